// controllers/recommendation_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

type RecommendationController struct {
	Service *services.RecommendationService
}

func NewRecommendationController(s *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Service: s}
}

// Recommend godoc
// @Summary      메뉴 추천
// @Description  사용자 조건을 AI 서버로 보내고, 추천 결과를 DB 정보로 보강해 끼니별로 묶어 반환합니다.
// @Tags         recommend
// @Accept       json
// @Produce      json
// @Param        request body services.RecommendRequest true "추천 조건"
// @Success      200 {object} services.RecommendationResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /recommend [post]
func (ctl *RecommendationController) Recommend(c *gin.Context) {
	var req services.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(services.BindErrorToAPI(err))
		return
	}
	if verr := services.ValidateRecommendRequest(&req); verr != nil {
		c.Error(verr)
		return
	}

	resp, err := ctl.Service.Recommend(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
