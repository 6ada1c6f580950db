package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/amlakhub/amlak-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLeadRouter(t *testing.T) (*gin.Engine, *repository.LeadRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	repo := repository.NewLeadRepository(&storage.Postgres{DB: db})
	h := NewLeadHandler(repo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/leads", h.Create)
	router.GET("/api/admin/leads", h.List)

	return router, repo
}

func TestLeadHandler_CreateAndList(t *testing.T) {
	router, _ := newLeadRouter(t)

	body := `{"name":"Ali","phone":"09121234567","message":"interested in the villa"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var leads []models.Lead
	if err := json.Unmarshal(w.Body.Bytes(), &leads); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if len(leads) != 1 || leads[0].Phone != "09121234567" {
		t.Fatalf("unexpected leads %+v", leads)
	}
}

func TestLeadHandler_CreateValidation(t *testing.T) {
	router, _ := newLeadRouter(t)

	// Phone is required
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"name":"Ali"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
