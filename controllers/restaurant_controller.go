// controllers/restaurant_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GDG-MenuMate/MenuMate-BE/pkg/apierr"
	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// List godoc
// @Summary      식당 전체 조회
// @Tags         restaurants
// @Produce      json
// @Success      200 {array} entity.Restaurant
// @Router       /api/restaurants [get]
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rests)
}

// Menus godoc
// @Summary      식당별 메뉴 조회
// @Tags         restaurants
// @Produce      json
// @Param        id path int true "restaurants_id"
// @Success      200 {array} entity.Menu
// @Router       /api/restaurants/{id}/menus [get]
func (ctl *RestaurantController) Menus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apierr.BadRequest(apierr.CodeInvalidParameter, "restaurant id must be an integer"))
		return
	}

	menus, err := ctl.Service.Menus(id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, menus)
}
