package services

import (
	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

type EngagementService interface {
	SaveProgress(userID, titleID uint, position int) (*models.Progress, error)
	GetProgress(userID, titleID uint) (*models.Progress, error)
	ListContinueWatching(userID uint) ([]models.ContinueWatchingItem, error)
	AddFavorite(userID, titleID uint) (*models.Favorite, error)
	RemoveFavorite(userID, titleID uint) error
	IsFavorite(userID, titleID uint) (bool, error)
	ListFavorites(userID uint) ([]models.Title, error)
}

type engagementService struct {
	titleRepo    repository.TitleRepository
	progressRepo repository.ProgressRepository
	favoriteRepo repository.FavoriteRepository
}

func NewEngagementService(
	titleRepo repository.TitleRepository,
	progressRepo repository.ProgressRepository,
	favoriteRepo repository.FavoriteRepository,
) EngagementService {
	return &engagementService{
		titleRepo:    titleRepo,
		progressRepo: progressRepo,
		favoriteRepo: favoriteRepo,
	}
}

// SaveProgress overwrites the stored position unconditionally.
// Rewinding is a normal playback action, so there is no
// monotonic-increase check.
func (s *engagementService) SaveProgress(userID, titleID uint, position int) (*models.Progress, error) {
	return s.progressRepo.UpsertProgress(userID, titleID, position)
}

// GetProgress never reports "not found": a title the user has not
// started simply has position 0.
func (s *engagementService) GetProgress(userID, titleID uint) (*models.Progress, error) {
	progress, err := s.progressRepo.GetProgress(userID, titleID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return &models.Progress{Position: 0}, nil
	}
	return progress, nil
}

// ListContinueWatching returns unfinished playback: rows strictly
// between "not started" (0) and "watched to the end" (>= duration).
func (s *engagementService) ListContinueWatching(userID uint) ([]models.ContinueWatchingItem, error) {
	progresses, err := s.progressRepo.GetProgressByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ContinueWatchingItem, 0, len(progresses))
	for _, p := range progresses {
		if p.Title.ID == 0 {
			continue // title deleted without cleanup
		}
		if p.Position <= 0 || p.Position >= p.Title.Duration {
			continue
		}
		items = append(items, models.ContinueWatchingItem{
			ID:       p.ID,
			TitleID:  p.TitleID,
			Position: p.Position,
			Title:    p.Title,
		})
	}
	return items, nil
}

// AddFavorite verifies the title exists, then upserts; repeating the
// call never creates a duplicate.
func (s *engagementService) AddFavorite(userID, titleID uint) (*models.Favorite, error) {
	if _, err := s.titleRepo.GetTitleByID(titleID); err != nil {
		return nil, err
	}
	return s.favoriteRepo.UpsertFavorite(userID, titleID)
}

func (s *engagementService) RemoveFavorite(userID, titleID uint) error {
	return s.favoriteRepo.DeleteFavorite(userID, titleID)
}

func (s *engagementService) IsFavorite(userID, titleID uint) (bool, error) {
	return s.favoriteRepo.IsFavorite(userID, titleID)
}

// ListFavorites returns the favorited titles themselves. Rows whose
// title vanished without cleanup are dropped defensively; cascading
// delete should make that unreachable.
func (s *engagementService) ListFavorites(userID uint) ([]models.Title, error) {
	favorites, err := s.favoriteRepo.GetFavoritesByUser(userID)
	if err != nil {
		return nil, err
	}

	titles := make([]models.Title, 0, len(favorites))
	for _, f := range favorites {
		if f.Title.ID == 0 {
			continue
		}
		titles = append(titles, f.Title)
	}
	return titles, nil
}
