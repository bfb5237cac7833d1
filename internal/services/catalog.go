package services

import (
	"log"
	"time"

	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

// relatedLimit caps the "similar titles" rail.
const relatedLimit = 6

const defaultGenre = "Drama"

type CatalogService interface {
	ListTitles(viewerAge *int, seriesOnly bool) ([]models.Title, error)
	GetTitle(id uint) (*models.Title, error)
	ListEpisodes(seriesID uint) ([]models.Title, error)
	ListRelated(id uint) ([]models.Title, error)
	ViewerAge(userID uint) *int
}

type catalogService struct {
	titleRepo repository.TitleRepository
	userRepo  repository.UserRepository
}

func NewCatalogService(titleRepo repository.TitleRepository, userRepo repository.UserRepository) CatalogService {
	return &catalogService{
		titleRepo: titleRepo,
		userRepo:  userRepo,
	}
}

// ListTitles returns the catalog most-recent-first, optionally
// restricted to series roots, with titles above the viewer's age
// removed. A nil viewerAge applies no filter.
func (s *catalogService) ListTitles(viewerAge *int, seriesOnly bool) ([]models.Title, error) {
	var titles []models.Title
	var err error

	if seriesOnly {
		titles, err = s.titleRepo.GetSeriesRoots()
	} else {
		titles, err = s.titleRepo.GetAllTitles()
	}
	if err != nil {
		return nil, err
	}

	if viewerAge == nil {
		return titles, nil
	}

	filtered := make([]models.Title, 0, len(titles))
	for _, title := range titles {
		rating := title.AgeRating
		if rating == "" {
			rating = "L"
		}
		if CanWatch(viewerAge, rating) {
			filtered = append(filtered, title)
		}
	}
	return filtered, nil
}

func (s *catalogService) GetTitle(id uint) (*models.Title, error) {
	title, err := s.titleRepo.GetTitleByID(id)
	if err != nil {
		return nil, err
	}

	// Rows created before the genre column existed come back empty.
	if title.Genre == "" {
		title.Genre = defaultGenre
	}
	return title, nil
}

// ListEpisodes returns a series root's episodes grouped season
// ascending, then episode ascending.
func (s *catalogService) ListEpisodes(seriesID uint) ([]models.Title, error) {
	if _, err := s.titleRepo.GetTitleByID(seriesID); err != nil {
		return nil, err
	}
	return s.titleRepo.GetEpisodes(seriesID)
}

// ListRelated returns up to relatedLimit titles for the "similar
// titles" rail: never the title itself, never an episode.
func (s *catalogService) ListRelated(id uint) ([]models.Title, error) {
	if _, err := s.titleRepo.GetTitleByID(id); err != nil {
		return nil, err
	}

	titles, err := s.titleRepo.GetAllTitles()
	if err != nil {
		return nil, err
	}

	related := make([]models.Title, 0, relatedLimit)
	for _, title := range titles {
		if title.ID == id || title.SeriesID != nil {
			continue
		}
		related = append(related, title)
		if len(related) == relatedLimit {
			break
		}
	}
	return related, nil
}

// ViewerAge resolves the current age for an authenticated user.
// Lookup failures degrade to nil (no filtering) rather than erroring:
// browsing must keep working even if the user row is gone.
func (s *catalogService) ViewerAge(userID uint) *int {
	if userID == 0 {
		return nil
	}

	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		log.Printf("[catalog] viewer %d lookup failed, listing unfiltered: %v", userID, err)
		return nil
	}

	return ComputeAge(user.BirthDate, time.Now())
}
