package handler

import (
	"net/http"

	"github.com/amlakhub/amlak-api/internal/middleware"
	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VideoHandler struct {
	repo *repository.VideoRepository
}

func NewVideoHandler(repo *repository.VideoRepository) *VideoHandler {
	return &VideoHandler{repo: repo}
}

func (h *VideoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	videos, err := h.repo.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Handles POST /api/admin/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req struct {
		Title     string `json:"title" binding:"required"`
		Path      string `json:"path" binding:"required"`
		ListingID string `json:"listing_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video := &models.Video{
		Title: req.Title,
		Path:  req.Path,
	}

	if req.ListingID != "" {
		if id, err := uuid.Parse(req.ListingID); err == nil {
			video.ListingID = &id
		}
	}

	if id, err := uuid.Parse(c.GetString(middleware.CtxUserID)); err == nil {
		video.UploadedBy = &id
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, video)
}

// Handles DELETE /api/admin/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}
