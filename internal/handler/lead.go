package handler

import (
	"net/http"
	"strconv"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	repo *repository.LeadRepository
}

func NewLeadHandler(repo *repository.LeadRepository) *LeadHandler {
	return &LeadHandler{repo: repo}
}

// Handles POST /api/leads (public contact form)
func (h *LeadHandler) Create(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
		Message   string `json:"message"`
		ListingID string `json:"listing_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.Lead{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if req.ListingID != "" {
		if id, err := uuid.Parse(req.ListingID); err == nil {
			lead.ListingID = &id
		}
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "thanks, we will call you back"})
}

// Handles GET /api/admin/leads
func (h *LeadHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ctx := c.Request.Context()
	leads, err := h.repo.List(ctx, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}
