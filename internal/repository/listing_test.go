package repository

import (
	"context"
	"testing"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *storage.Postgres {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Listing{}, &models.Lead{}, &models.User{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return &storage.Postgres{DB: db}
}

func TestListingRepository_CRUD(t *testing.T) {
	repo := NewListingRepository(newTestDB(t))
	ctx := context.Background()

	listing := &models.Listing{Title: "2BR apartment", DealType: "sale", City: "Tehran", Price: 9_500_000_000}
	if err := repo.Create(ctx, listing); err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}

	got, err := repo.FindByID(ctx, listing.ID.String())
	if err != nil {
		t.Fatalf("failed to find listing: %v", err)
	}
	if got == nil || got.Title != "2BR apartment" {
		t.Fatalf("unexpected listing %+v", got)
	}

	if err := repo.Update(ctx, listing.ID.String(), map[string]interface{}{"price": int64(10_000_000_000)}); err != nil {
		t.Fatalf("failed to update listing: %v", err)
	}

	got, _ = repo.FindByID(ctx, listing.ID.String())
	if got.Price != 10_000_000_000 {
		t.Fatalf("expected updated price, got %d", got.Price)
	}

	if err := repo.Delete(ctx, listing.ID.String()); err != nil {
		t.Fatalf("failed to delete listing: %v", err)
	}
	if got, _ := repo.FindByID(ctx, listing.ID.String()); got != nil {
		t.Fatal("expected listing to be gone")
	}
}

func TestListingRepository_ListFilters(t *testing.T) {
	repo := NewListingRepository(newTestDB(t))
	ctx := context.Background()

	repo.Create(ctx, &models.Listing{Title: "a", City: "Tehran", DealType: "sale"})
	repo.Create(ctx, &models.Listing{Title: "b", City: "Tehran", DealType: "rent"})
	repo.Create(ctx, &models.Listing{Title: "c", City: "Shiraz", DealType: "sale"})

	tehran, err := repo.List(ctx, ListingFilter{City: "Tehran"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(tehran) != 2 {
		t.Fatalf("expected 2 Tehran listings, got %d", len(tehran))
	}

	sales, _ := repo.List(ctx, ListingFilter{DealType: "sale"})
	if len(sales) != 2 {
		t.Fatalf("expected 2 sale listings, got %d", len(sales))
	}

	paged, _ := repo.List(ctx, ListingFilter{Limit: 1})
	if len(paged) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(paged))
	}
}

func TestLeadRepository_CreateAndList(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Lead{Name: "Ali", Phone: "09121234567", Message: "call me"}); err != nil {
		t.Fatalf("failed to create lead: %v", err)
	}

	leads, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("failed to list leads: %v", err)
	}
	if len(leads) != 1 || leads[0].Name != "Ali" {
		t.Fatalf("unexpected leads %+v", leads)
	}

	if err := repo.Delete(ctx, leads[0].ID.String()); err != nil {
		t.Fatalf("failed to delete lead: %v", err)
	}

	leads, _ = repo.List(ctx, 10, 0)
	if len(leads) != 0 {
		t.Fatalf("expected lead removed, got %d", len(leads))
	}
}
