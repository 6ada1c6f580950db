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

type BlogHandler struct {
	repo *repository.BlogRepository
}

func NewBlogHandler(repo *repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

func (h *BlogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ctx := c.Request.Context()
	blogs, err := h.repo.List(ctx, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// Handles GET /api/blogs/:id where :id is a uuid or a slug
func (h *BlogHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	blog, err := h.repo.Find(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if blog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Slug  string `json:"slug" binding:"required"`
		Body  string `json:"body"`
		Cover string `json:"cover"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog := &models.Blog{
		Title: req.Title,
		Slug:  req.Slug,
		Body:  req.Body,
		Cover: req.Cover,
	}

	if id, err := uuid.Parse(c.GetString(middleware.CtxUserID)); err == nil {
		blog.AuthorID = &id
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	for _, col := range []string{"title", "slug", "body", "cover"} {
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

	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
