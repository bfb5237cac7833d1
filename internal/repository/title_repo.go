package repository

import (
	"errors"

	"github.com/duwalace/ZionFlixx/internal/database"
	"github.com/duwalace/ZionFlixx/internal/models"

	"gorm.io/gorm"
)

var ErrTitleNotFound = errors.New("title not found")

type TitleRepository interface {
	CreateTitle(title *models.Title) error
	GetTitleByID(id uint) (*models.Title, error)
	GetAllTitles() ([]models.Title, error)
	GetSeriesRoots() ([]models.Title, error)
	GetEpisodes(seriesID uint) ([]models.Title, error)
	UpdateTitle(id uint, fields map[string]interface{}) error
	DeleteTitleCascade(id uint) error
	CountTitles() (int64, error)
	CountTitlesByType(titleType string) (int64, error)
	CountTitlesByAgeRating() ([]models.AgeRatingStat, error)
}

type titleRepo struct {
	db *gorm.DB
}

func NewTitleRepository() TitleRepository {
	return &titleRepo{db: database.DB}
}

func (r *titleRepo) CreateTitle(title *models.Title) error {
	return r.db.Create(title).Error
}

func (r *titleRepo) GetTitleByID(id uint) (*models.Title, error) {
	var title models.Title
	err := r.db.First(&title, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	return &title, nil
}

// GetAllTitles returns the whole catalog, most recent first. IDs are
// monotonic, so id DESC is a stable recency order.
func (r *titleRepo) GetAllTitles() ([]models.Title, error) {
	var titles []models.Title
	err := r.db.Order("id DESC").Find(&titles).Error
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []models.Title{}
	}
	return titles, nil
}

// GetSeriesRoots returns series entries that are not episodes
// (type=series, no parent).
func (r *titleRepo) GetSeriesRoots() ([]models.Title, error) {
	var titles []models.Title
	err := r.db.Where("type = ? AND series_id IS NULL", models.TypeSeries).
		Order("id DESC").
		Find(&titles).Error
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []models.Title{}
	}
	return titles, nil
}

// GetEpisodes lists a series root's episodes in watch order. Null
// season/episode sort as 0 without being rewritten in the row.
func (r *titleRepo) GetEpisodes(seriesID uint) ([]models.Title, error) {
	var titles []models.Title
	err := r.db.Where("series_id = ?", seriesID).
		Order("COALESCE(season, 0) ASC, COALESCE(episode, 0) ASC").
		Find(&titles).Error
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []models.Title{}
	}
	return titles, nil
}

func (r *titleRepo) UpdateTitle(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Title{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteTitleCascade removes a title together with every progress and
// favorite row referencing it. The store has no FK cascade, so the
// dependents go first, inside one transaction.
func (r *titleRepo) DeleteTitleCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Title{}, id).Error
	})
}

func (r *titleRepo) CountTitles() (int64, error) {
	var count int64
	err := r.db.Model(&models.Title{}).Count(&count).Error
	return count, err
}

func (r *titleRepo) CountTitlesByType(titleType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Title{}).Where("type = ?", titleType).Count(&count).Error
	return count, err
}

func (r *titleRepo) CountTitlesByAgeRating() ([]models.AgeRatingStat, error) {
	var stats []models.AgeRatingStat
	err := r.db.Model(&models.Title{}).
		Select("COALESCE(age_rating, 'L') AS rating, COUNT(*) AS count").
		Group("COALESCE(age_rating, 'L')").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.AgeRatingStat{}
	}
	return stats, nil
}
