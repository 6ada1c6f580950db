package handler

import (
	"net/http"
	"time"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	repo *repository.OfferRepository
}

func NewOfferHandler(repo *repository.OfferRepository) *OfferHandler {
	return &OfferHandler{repo: repo}
}

func (h *OfferHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	offers, err := h.repo.ListActive(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req struct {
		Title     string     `json:"title" binding:"required"`
		Body      string     `json:"body"`
		Image     string     `json:"image"`
		ExpiresAt *time.Time `json:"expires_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer := &models.Offer{
		Title:     req.Title,
		Body:      req.Body,
		Image:     req.Image,
		ExpiresAt: req.ExpiresAt,
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, offer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}
