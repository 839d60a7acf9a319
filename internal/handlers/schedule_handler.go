package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/2025renato/agenda-pet-api/internal/domain/scheduling"
	"github.com/2025renato/agenda-pet-api/internal/httpresp"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// Options expõe o catálogo fixo que os pickers do app renderizam.
func (h *ScheduleHandler) Options(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"servicos": scheduling.Services(),
		"horarios": scheduling.Hours(),
	})
}
