package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duwalace/ZionFlixx/internal/services"
)

type UploadHandler struct {
	uploads services.UploadService
}

func NewUploadHandler(uploads services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
		})
		return
	}

	path, err := h.uploads.SaveCover(file)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"path":     path,
		"filename": file.Filename,
	})
}

func (h *UploadHandler) UploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
		})
		return
	}

	path, hint, err := h.uploads.SaveVideo(file)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"path":     path,
		"filename": file.Filename,
		"message":  hint,
	})
}

func (h *UploadHandler) writeUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidImageType),
		errors.Is(err, services.ErrInvalidVideoType),
		errors.Is(err, services.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	default:
		log.Printf("[upload] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store uploaded file",
		})
	}
}
