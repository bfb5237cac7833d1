package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/database"
	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

// setupTestDB points database.DB at an isolated in-memory sqlite
// database named after the test, so repositories built afterwards hit
// the fixture.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	database.DB = db
	if err := database.AutoMigrate(); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.GlobalConfig = &config.Config{
		Env:            "test",
		JWTSecret:      "test-secret",
		MediaRoot:      t.TempDir(),
		MaxCoverSizeMB: 5,
		MaxVideoSizeMB: 10,
		PlaceholderHLS: "/media/uploads/placeholder.m3u8",
	}
}

func createTestUser(t *testing.T, email, role string, birthDate *string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		BirthDate:    birthDate,
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestTitle(t *testing.T, title models.Title) *models.Title {
	t.Helper()
	if title.Duration == 0 {
		title.Duration = 5400
	}
	if title.Type == "" {
		title.Type = models.TypeMovie
	}
	if title.AgeRating == "" {
		title.AgeRating = "L"
	}
	if title.CoverURL == "" {
		title.CoverURL = "/media/capas/test.jpg"
	}
	if title.HLSPath == "" {
		title.HLSPath = "/media/movies/test/master.m3u8"
	}
	if err := database.DB.Create(&title).Error; err != nil {
		t.Fatalf("create title %s: %v", title.Name, err)
	}
	return &title
}

func newCatalogService() CatalogService {
	return NewCatalogService(repository.NewTitleRepository(), repository.NewUserRepository())
}

func newTitleAdminService() TitleAdminService {
	return NewTitleAdminService(repository.NewTitleRepository())
}

func newEngagementService() EngagementService {
	return NewEngagementService(
		repository.NewTitleRepository(),
		repository.NewProgressRepository(),
		repository.NewFavoriteRepository(),
	)
}

func newStatsService() StatsService {
	return NewStatsService(
		repository.NewUserRepository(),
		repository.NewTitleRepository(),
		repository.NewProgressRepository(),
		repository.NewFavoriteRepository(),
	)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
