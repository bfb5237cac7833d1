package services

import (
	"log"

	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

type StatsService interface {
	GetStats() (*models.AdminStats, error)
	GetUsers() ([]models.AdminUser, error)
}

type statsService struct {
	userRepo     repository.UserRepository
	titleRepo    repository.TitleRepository
	progressRepo repository.ProgressRepository
	favoriteRepo repository.FavoriteRepository
}

func NewStatsService(
	userRepo repository.UserRepository,
	titleRepo repository.TitleRepository,
	progressRepo repository.ProgressRepository,
	favoriteRepo repository.FavoriteRepository,
) StatsService {
	return &statsService{
		userRepo:     userRepo,
		titleRepo:    titleRepo,
		progressRepo: progressRepo,
		favoriteRepo: favoriteRepo,
	}
}

// GetStats aggregates the dashboard counters straight from the store.
// Only the age-rating histogram is optional: if the grouped query
// fails, the report ships with an empty histogram instead of a 500.
func (s *statsService) GetStats() (*models.AdminStats, error) {
	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	clients, err := s.userRepo.CountUsersByRole(models.RoleClient)
	if err != nil {
		return nil, err
	}
	admins, err := s.userRepo.CountUsersByRole(models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	totalTitles, err := s.titleRepo.CountTitles()
	if err != nil {
		return nil, err
	}
	movies, err := s.titleRepo.CountTitlesByType(models.TypeMovie)
	if err != nil {
		return nil, err
	}
	series, err := s.titleRepo.CountTitlesByType(models.TypeSeries)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.progressRepo.CountProgress()
	if err != nil {
		return nil, err
	}
	uniqueViewers, err := s.progressRepo.CountDistinctViewers()
	if err != nil {
		return nil, err
	}
	totalFavorites, err := s.favoriteRepo.CountFavorites()
	if err != nil {
		return nil, err
	}

	ageRatings, err := s.titleRepo.CountTitlesByAgeRating()
	if err != nil {
		log.Printf("[stats] age rating histogram unavailable: %v", err)
		ageRatings = []models.AgeRatingStat{}
	}

	return &models.AdminStats{
		Users: models.UserStats{
			Total:   totalUsers,
			Clients: clients,
			Admins:  admins,
		},
		Content: models.ContentStats{
			Total:  totalTitles,
			Movies: movies,
			Series: series,
		},
		Engagement: models.EngagementStats{
			TotalViews:     totalViews,
			UniqueViewers:  uniqueViewers,
			TotalFavorites: totalFavorites,
		},
		AgeRatings: ageRatings,
	}, nil
}

// GetUsers lists every account with its engagement counts for the
// admin management table.
func (s *statsService) GetUsers() ([]models.AdminUser, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	result := make([]models.AdminUser, 0, len(users))
	for _, user := range users {
		favorites, err := s.favoriteRepo.CountFavoritesByUser(user.ID)
		if err != nil {
			return nil, err
		}
		progress, err := s.progressRepo.CountProgressByUser(user.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.AdminUser{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			BirthDate: user.BirthDate,
			Count: models.AdminUserCount{
				Favorites: favorites,
				Progress:  progress,
			},
		})
	}
	return result, nil
}
