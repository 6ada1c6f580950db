package handler

import (
	"net/http"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/gin-gonic/gin"
)

type ConsultantHandler struct {
	repo *repository.ConsultantRepository
}

func NewConsultantHandler(repo *repository.ConsultantRepository) *ConsultantHandler {
	return &ConsultantHandler{repo: repo}
}

func (h *ConsultantHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	consultants, err := h.repo.List(ctx, c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consultants)
}

func (h *ConsultantHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	consultant, err := h.repo.FindByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if consultant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultant not found"})
		return
	}

	c.JSON(http.StatusOK, consultant)
}

func (h *ConsultantHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
		Bio   string `json:"bio"`
		Photo string `json:"photo"`
		City  string `json:"city"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultant := &models.Consultant{
		Name:  req.Name,
		Phone: req.Phone,
		Bio:   req.Bio,
		Photo: req.Photo,
		City:  req.City,
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, consultant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, consultant)
}

func (h *ConsultantHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	for _, col := range []string{"name", "phone", "bio", "photo", "city"} {
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

	c.JSON(http.StatusOK, gin.H{"message": "consultant updated"})
}

func (h *ConsultantHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "consultant deleted"})
}
