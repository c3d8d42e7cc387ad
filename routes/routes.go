package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/configs"
	"github.com/GDG-MenuMate/MenuMate-BE/controllers"
	_ "github.com/GDG-MenuMate/MenuMate-BE/docs"
	"github.com/GDG-MenuMate/MenuMate-BE/repository"
	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Services
	aiClient := services.NewAIClient(cfg.AIEndpoint)
	aiStatus := services.NewAIStatusService()
	recSvc := services.NewRecommendationService(aiClient, menuRepo)
	restSvc := services.NewRestaurantService(restaurantRepo, menuRepo)

	// Controllers
	recCtrl := controllers.NewRecommendationController(recSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	healthCtrl := controllers.NewHealthController(aiClient, aiStatus)

	r.POST("/recommend", recCtrl.Recommend)
	r.GET("/health", healthCtrl.Check)

	api := r.Group("/api")
	{
		api.GET("/restaurants", restCtrl.List)
		api.GET("/restaurants/:id/menus", restCtrl.Menus)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND", "msg": "Route not found"})
	})
}
