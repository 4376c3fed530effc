package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"trekkit/internal/transport/http/response"
)

type HealthHandler struct {
	startedAt time.Time
	appName   string
}

func NewHealthHandler(appName string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		startedAt: startedAt,
		appName:   appName,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.OK(c, gin.H{
		"app":    h.appName,
		"uptime": time.Since(h.startedAt).String(),
	})
}
