package services

import (
	"testing"

	"github.com/duwalace/ZionFlixx/internal/models"
)

func TestGetStats(t *testing.T) {
	setupTestDB(t)
	stats := newStatsService()
	engagement := newEngagementService()

	alice := createTestUser(t, "alice@test.com", models.RoleClient, nil)
	bob := createTestUser(t, "bob@test.com", models.RoleClient, nil)
	createTestUser(t, "admin@test.com", models.RoleAdmin, nil)

	m1 := createTestTitle(t, models.Title{Name: "Movie 1", AgeRating: "L"})
	m2 := createTestTitle(t, models.Title{Name: "Movie 2", AgeRating: "18"})
	s1 := createTestTitle(t, models.Title{Name: "Show", Type: models.TypeSeries, AgeRating: "18"})

	// 3 progress rows across 2 distinct viewers
	for _, seed := range []struct {
		userID  uint
		titleID uint
	}{
		{alice.ID, m1.ID},
		{alice.ID, m2.ID},
		{bob.ID, m1.ID},
	} {
		if _, err := engagement.SaveProgress(seed.userID, seed.titleID, 60); err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}

	if _, err := engagement.AddFavorite(alice.ID, s1.ID); err != nil {
		t.Fatalf("seed favorite: %v", err)
	}
	if _, err := engagement.AddFavorite(bob.ID, m1.ID); err != nil {
		t.Fatalf("seed favorite: %v", err)
	}

	report, err := stats.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if report.Users.Total != 3 || report.Users.Clients != 2 || report.Users.Admins != 1 {
		t.Errorf("user stats = %+v", report.Users)
	}
	if report.Content.Total != 3 || report.Content.Movies != 2 || report.Content.Series != 1 {
		t.Errorf("content stats = %+v", report.Content)
	}
	if report.Engagement.TotalViews != 3 {
		t.Errorf("totalViews = %d, want 3", report.Engagement.TotalViews)
	}
	if report.Engagement.UniqueViewers != 2 {
		t.Errorf("uniqueViewers = %d, want 2", report.Engagement.UniqueViewers)
	}
	if report.Engagement.TotalFavorites != 2 {
		t.Errorf("totalFavorites = %d, want 2", report.Engagement.TotalFavorites)
	}

	histogram := map[string]int64{}
	for _, entry := range report.AgeRatings {
		histogram[entry.Rating] = entry.Count
	}
	if histogram["L"] != 1 || histogram["18"] != 2 {
		t.Errorf("age rating histogram = %v", histogram)
	}
}

func TestGetUsersWithCounts(t *testing.T) {
	setupTestDB(t)
	stats := newStatsService()
	engagement := newEngagementService()

	user := createTestUser(t, "u@test.com", models.RoleClient, strPtr("1995-05-05"))
	title := createTestTitle(t, models.Title{Name: "Movie"})

	if _, err := engagement.SaveProgress(user.ID, title.ID, 10); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if _, err := engagement.AddFavorite(user.ID, title.ID); err != nil {
		t.Fatalf("seed favorite: %v", err)
	}

	users, err := stats.GetUsers()
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	got := users[0]
	if got.Email != "u@test.com" || got.Role != models.RoleClient {
		t.Errorf("unexpected user %+v", got)
	}
	if got.BirthDate == nil || *got.BirthDate != "1995-05-05" {
		t.Errorf("birthDate = %v", got.BirthDate)
	}
	if got.Count.Favorites != 1 || got.Count.Progress != 1 {
		t.Errorf("counts = %+v", got.Count)
	}
}
