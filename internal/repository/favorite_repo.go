package repository

import (
	"github.com/duwalace/ZionFlixx/internal/database"
	"github.com/duwalace/ZionFlixx/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	UpsertFavorite(userID, titleID uint) (*models.Favorite, error)
	DeleteFavorite(userID, titleID uint) error
	IsFavorite(userID, titleID uint) (bool, error)
	GetFavoritesByUser(userID uint) ([]models.Favorite, error)
	CountFavorites() (int64, error)
	CountFavoritesByUser(userID uint) (int64, error)
}

type favoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepository() FavoriteRepository {
	return &favoriteRepo{db: database.DB}
}

// UpsertFavorite is an idempotent add: a repeat call hits the unique
// (user_id, title_id) index and does nothing.
func (r *favoriteRepo) UpsertFavorite(userID, titleID uint) (*models.Favorite, error) {
	favorite := models.Favorite{
		UserID:  userID,
		TitleID: titleID,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "title_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
	if err != nil {
		return nil, err
	}

	var existing models.Favorite
	if err := r.db.Where("user_id = ? AND title_id = ?", userID, titleID).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteFavorite removes any matching rows; removing an absent
// favorite is a no-op, not an error.
func (r *favoriteRepo) DeleteFavorite(userID, titleID uint) error {
	return r.db.Where("user_id = ? AND title_id = ?", userID, titleID).
		Delete(&models.Favorite{}).Error
}

func (r *favoriteRepo) IsFavorite(userID, titleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND title_id = ?", userID, titleID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepo) GetFavoritesByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Title").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

func (r *favoriteRepo) CountFavorites() (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Count(&count).Error
	return count, err
}

func (r *favoriteRepo) CountFavoritesByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
