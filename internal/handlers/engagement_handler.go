package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
	"github.com/duwalace/ZionFlixx/internal/services"
)

type EngagementHandler struct {
	engagement services.EngagementService
}

func NewEngagementHandler(engagement services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// GetContinueWatching lists the user's unfinished titles for the
// home screen rail.
func (h *EngagementHandler) GetContinueWatching(c *gin.Context) {
	userID := c.GetUint("user_id")

	items, err := h.engagement.ListContinueWatching(userID)
	if err != nil {
		log.Printf("[GetContinueWatching] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch progress",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetProgress returns the saved position for one title, position 0
// when the user never started it.
func (h *EngagementHandler) GetProgress(c *gin.Context) {
	userID := c.GetUint("user_id")
	titleID, ok := parseTitleID(c)
	if !ok {
		return
	}

	progress, err := h.engagement.GetProgress(userID, titleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch progress",
		})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *EngagementHandler) SaveProgress(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.ProgressSave
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "titleId and position are required",
		})
		return
	}

	progress, err := h.engagement.SaveProgress(userID, req.TitleID, *req.Position)
	if err != nil {
		log.Printf("[SaveProgress] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save progress",
		})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *EngagementHandler) GetFavorites(c *gin.Context) {
	userID := c.GetUint("user_id")

	titles, err := h.engagement.ListFavorites(userID)
	if err != nil {
		log.Printf("[GetFavorites] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch favorites",
		})
		return
	}

	c.JSON(http.StatusOK, titles)
}

func (h *EngagementHandler) AddFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.FavoriteAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "titleId is required",
		})
		return
	}

	favorite, err := h.engagement.AddFavorite(userID, req.TitleID)
	if err != nil {
		if errors.Is(err, repository.ErrTitleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Title not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to add favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"favorite": favorite,
	})
}

func (h *EngagementHandler) RemoveFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")
	titleID, ok := parseTitleID(c)
	if !ok {
		return
	}

	if err := h.engagement.RemoveFavorite(userID, titleID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EngagementHandler) CheckFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")
	titleID, ok := parseTitleID(c)
	if !ok {
		return
	}

	isFavorite, err := h.engagement.IsFavorite(userID, titleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

func parseTitleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("titleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid title ID",
		})
		return 0, false
	}
	return uint(id), true
}
