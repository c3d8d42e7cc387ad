package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GDG-MenuMate/MenuMate-BE/configs"
	"github.com/GDG-MenuMate/MenuMate-BE/middlewares"
	"github.com/GDG-MenuMate/MenuMate-BE/routes"
)

// @title        MenuMate API
// @version      1.0.0
// @description  메뉴 추천 서비스 MenuMate의 API 문서입니다.
func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedFromCSV(cfg.SeedDir); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.ErrorHandler())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
