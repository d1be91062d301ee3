package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ServiceName = "Trail Fit Uploader API"

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

// Root godoc
// @Summary Service info
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": ServiceName, "docs": "/docs"})
}

// Health godoc
// @Summary Static liveness check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
