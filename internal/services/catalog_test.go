package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

func TestListTitlesOrderAndSeriesFilter(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	createTestTitle(t, models.Title{Name: "Movie A"})
	root := createTestTitle(t, models.Title{Name: "Series S", Type: models.TypeSeries})
	createTestTitle(t, models.Title{
		Name: "S1E1", Type: models.TypeSeries, SeriesID: &root.ID,
		Season: intPtr(1), Episode: intPtr(1),
	})

	all, err := svc.ListTitles(nil, false)
	if err != nil {
		t.Fatalf("ListTitles: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(all))
	}
	// Most recent first
	for i := 1; i < len(all); i++ {
		if all[i-1].ID < all[i].ID {
			t.Errorf("titles not in id DESC order: %d before %d", all[i-1].ID, all[i].ID)
		}
	}

	roots, err := svc.ListTitles(nil, true)
	if err != nil {
		t.Fatalf("ListTitles seriesOnly: %v", err)
	}
	if len(roots) != 1 || roots[0].ID != root.ID {
		t.Fatalf("seriesOnly should return just the series root, got %+v", roots)
	}
}

func TestListTitlesAgeFiltering(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	createTestTitle(t, models.Title{Name: "Free", AgeRating: "L"})
	createTestTitle(t, models.Title{Name: "Teen", AgeRating: "14"})
	adult := createTestTitle(t, models.Title{Name: "Adult", AgeRating: "18"})

	seventeen := 17
	titles, err := svc.ListTitles(&seventeen, false)
	if err != nil {
		t.Fatalf("ListTitles: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("age 17 should see 2 titles, got %d", len(titles))
	}
	for _, title := range titles {
		if title.ID == adult.ID {
			t.Errorf("age 17 must not see the 18-rated title")
		}
	}

	// Nil age sees everything, including 18.
	titles, err = svc.ListTitles(nil, false)
	if err != nil {
		t.Fatalf("ListTitles: %v", err)
	}
	if len(titles) != 3 {
		t.Errorf("nil age should see all 3 titles, got %d", len(titles))
	}
}

func TestGetTitleNotFound(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	if _, err := svc.GetTitle(999); !errors.Is(err, repository.ErrTitleNotFound) {
		t.Errorf("expected ErrTitleNotFound, got %v", err)
	}
}

func TestListEpisodesOrdering(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	root := createTestTitle(t, models.Title{Name: "Show", Type: models.TypeSeries})
	s2e1 := createTestTitle(t, models.Title{
		Name: "S2E1", Type: models.TypeSeries, SeriesID: &root.ID,
		Season: intPtr(2), Episode: intPtr(1),
	})
	s1e2 := createTestTitle(t, models.Title{
		Name: "S1E2", Type: models.TypeSeries, SeriesID: &root.ID,
		Season: intPtr(1), Episode: intPtr(2),
	})
	s1e1 := createTestTitle(t, models.Title{
		Name: "S1E1", Type: models.TypeSeries, SeriesID: &root.ID,
		Season: intPtr(1), Episode: intPtr(1),
	})
	untagged := createTestTitle(t, models.Title{
		Name: "Special", Type: models.TypeSeries, SeriesID: &root.ID,
	})

	episodes, err := svc.ListEpisodes(root.ID)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}

	wantOrder := []uint{untagged.ID, s1e1.ID, s1e2.ID, s2e1.ID}
	if len(episodes) != len(wantOrder) {
		t.Fatalf("expected %d episodes, got %d", len(wantOrder), len(episodes))
	}
	for i, want := range wantOrder {
		if episodes[i].ID != want {
			t.Errorf("episode[%d] = %s (id %d), want id %d", i, episodes[i].Name, episodes[i].ID, want)
		}
	}

	// Null season/episode sorted as 0 but not rewritten.
	if episodes[0].Season != nil || episodes[0].Episode != nil {
		t.Errorf("untagged episode should keep nil season/episode")
	}
}

func TestListRelated(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	root := createTestTitle(t, models.Title{Name: "Show", Type: models.TypeSeries})
	createTestTitle(t, models.Title{
		Name: "S1E1", Type: models.TypeSeries, SeriesID: &root.ID,
	})
	var movies []*models.Title
	for i := 0; i < 8; i++ {
		movies = append(movies, createTestTitle(t, models.Title{Name: fmt.Sprintf("Movie %d", i)}))
	}

	related, err := svc.ListRelated(movies[0].ID)
	if err != nil {
		t.Fatalf("ListRelated: %v", err)
	}

	if len(related) != 6 {
		t.Fatalf("related should cap at 6, got %d", len(related))
	}
	for _, title := range related {
		if title.ID == movies[0].ID {
			t.Errorf("related must not contain the title itself")
		}
		if title.SeriesID != nil {
			t.Errorf("related must not contain episodes, got %s", title.Name)
		}
	}
}

func TestViewerAgeDegradesToNil(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	// Unauthenticated
	if age := svc.ViewerAge(0); age != nil {
		t.Errorf("ViewerAge(0) = %v, want nil", age)
	}

	// Unknown user degrades silently
	if age := svc.ViewerAge(999); age != nil {
		t.Errorf("ViewerAge(unknown) = %v, want nil", age)
	}

	// User without birth date
	user := createTestUser(t, "nobirth@test.com", models.RoleClient, nil)
	if age := svc.ViewerAge(user.ID); age != nil {
		t.Errorf("ViewerAge without birth date = %v, want nil", age)
	}

	// User with birth date resolves
	dated := createTestUser(t, "dated@test.com", models.RoleClient, strPtr("1990-01-01"))
	if age := svc.ViewerAge(dated.ID); age == nil || *age < 30 {
		t.Errorf("ViewerAge with birth date = %v, want >= 30", age)
	}
}
