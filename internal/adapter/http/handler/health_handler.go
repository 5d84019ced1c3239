package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/pkg/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"app":     h.cfg.AppName,
		"version": h.cfg.AppVersion,
	})
}
