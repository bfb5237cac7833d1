package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/services"
)

type AdminHandler struct {
	stats services.StatsService
}

func NewAdminHandler(stats services.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats()
	if err != nil {
		log.Printf("[GetStats] ERROR: %v", err)
		body := gin.H{
			"status":  "error",
			"message": "Failed to fetch statistics",
		}
		if !config.GlobalConfig.IsProduction() {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.stats.GetUsers()
	if err != nil {
		log.Printf("[GetUsers] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch users",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}
