package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
	"github.com/duwalace/ZionFlixx/internal/services"
)

type TitleHandler struct {
	catalog services.CatalogService
	admin   services.TitleAdminService
}

func NewTitleHandler(catalog services.CatalogService, admin services.TitleAdminService) *TitleHandler {
	return &TitleHandler{
		catalog: catalog,
		admin:   admin,
	}
}

// GetTitles lists the catalog. Runs behind the optional JWT
// middleware: an authenticated viewer with a birth date gets an
// age-filtered view, everyone else sees everything.
func (h *TitleHandler) GetTitles(c *gin.Context) {
	seriesOnly := c.Query("seriesOnly") == "true"
	viewerAge := h.catalog.ViewerAge(c.GetUint("user_id"))

	titles, err := h.catalog.ListTitles(viewerAge, seriesOnly)
	if err != nil {
		log.Printf("[GetTitles] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch titles",
		})
		return
	}

	c.JSON(http.StatusOK, titles)
}

func (h *TitleHandler) GetTitleByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	title, err := h.catalog.GetTitle(id)
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
			"message": "Failed to fetch title",
		})
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) GetEpisodes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	episodes, err := h.catalog.ListEpisodes(id)
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
			"message": "Failed to fetch episodes",
		})
		return
	}

	c.JSON(http.StatusOK, episodes)
}

func (h *TitleHandler) GetRelated(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	related, err := h.catalog.ListRelated(id)
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
			"message": "Failed to fetch related titles",
		})
		return
	}

	c.JSON(http.StatusOK, related)
}

// CreateTitle handles the admin create form. Validation failures are
// user-correctable and map to 400 with a specific message.
func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req models.TitleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
		})
		return
	}

	title, err := h.admin.CreateTitle(req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TitleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
		})
		return
	}

	title, err := h.admin.UpdateTitle(id, req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteTitle(id); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Title deleted successfully",
	})
}

// SeedTitle creates a demo entry (dev route).
func (h *TitleHandler) SeedTitle(c *gin.Context) {
	title, err := h.admin.SeedSampleTitle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to seed title",
		})
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrCoverRequired),
		errors.Is(err, services.ErrSeriesNotFound),
		errors.Is(err, services.ErrNotASeries):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, repository.ErrTitleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Title not found",
		})
	default:
		log.Printf("[titles] mutation error: %v", err)
		body := gin.H{
			"status":  "error",
			"message": "Failed to save title",
		}
		if !config.GlobalConfig.IsProduction() {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
		})
		return 0, false
	}
	return uint(id), true
}
