// controllers/health_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

type HealthController struct {
	AI     *services.AIClient
	Status *services.AIStatusService
}

func NewHealthController(ai *services.AIClient, status *services.AIStatusService) *HealthController {
	return &HealthController{AI: ai, Status: status}
}

type aiServerStatus struct {
	Available   bool      `json:"available"`
	Status      int       `json:"status,omitempty"`
	Error       string    `json:"error,omitempty"`
	LastChecked time.Time `json:"lastChecked"`
}

// Check godoc
// @Summary      헬스 체크
// @Description  백엔드와 AI 서버 상태를 반환합니다. AI 서버가 죽어 있어도 200입니다.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /health [get]
func (ctl *HealthController) Check(c *gin.Context) {
	health := ctl.AI.CheckHealth()
	ctl.Status.Record(health)
	last, checkedAt := ctl.Status.Last()

	c.JSON(http.StatusOK, gin.H{
		"backend": gin.H{"ok": true},
		"aiServer": aiServerStatus{
			Available:   last.Available,
			Status:      last.Status,
			Error:       last.Error,
			LastChecked: checkedAt,
		},
	})
}
