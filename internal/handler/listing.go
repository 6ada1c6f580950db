package handler

import (
	"net/http"
	"strconv"

	"github.com/amlakhub/amlak-api/internal/middleware"
	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	repo *repository.ListingRepository
}

func NewListingHandler(repo *repository.ListingRepository) *ListingHandler {
	return &ListingHandler{repo: repo}
}

// Handles GET /api/listings
func (h *ListingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.ListingFilter{
		City:     c.Query("city"),
		DealType: c.Query("deal_type"),
		Limit:    limit,
		Offset:   offset,
	}

	ctx := c.Request.Context()
	listings, err := h.repo.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Handles GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	listing, err := h.repo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Handles POST /api/admin/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		DealType    string `json:"deal_type" binding:"required"`
		City        string `json:"city" binding:"required"`
		District    string `json:"district"`
		Price       int64  `json:"price"`
		AreaSqm     int    `json:"area_sqm"`
		Rooms       int    `json:"rooms"`
		Images      string `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing := &models.Listing{
		Title:       req.Title,
		Description: req.Description,
		DealType:    req.DealType,
		City:        req.City,
		District:    req.District,
		Price:       req.Price,
		AreaSqm:     req.AreaSqm,
		Rooms:       req.Rooms,
		Images:      req.Images,
	}

	if id, err := uuid.Parse(c.GetString(middleware.CtxUserID)); err == nil {
		listing.CreatedByID = &id
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// Handles PATCH /api/admin/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only whitelisted columns may change
	updates := make(map[string]interface{})
	for _, col := range []string{"title", "description", "deal_type", "city", "district", "price", "area_sqm", "rooms", "images"} {
		if v, ok := req[col]; ok {
			updates[col] = v
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields supplied"})
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.Update(ctx, c.Param("id"), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing updated"})
}

// Handles DELETE /api/admin/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing deleted"})
}
