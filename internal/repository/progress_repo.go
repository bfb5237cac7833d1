package repository

import (
	"errors"

	"github.com/duwalace/ZionFlixx/internal/database"
	"github.com/duwalace/ZionFlixx/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	UpsertProgress(userID, titleID uint, position int) (*models.Progress, error)
	GetProgress(userID, titleID uint) (*models.Progress, error)
	GetProgressByUser(userID uint) ([]models.Progress, error)
	CountProgress() (int64, error)
	CountDistinctViewers() (int64, error)
	CountProgressByUser(userID uint) (int64, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepository() ProgressRepository {
	return &progressRepo{db: database.DB}
}

// UpsertProgress writes the playback position for a (user, title)
// pair. The unique index on the pair plus ON CONFLICT makes repeated
// saves converge to one row, last writer wins on position.
func (r *progressRepo) UpsertProgress(userID, titleID uint, position int) (*models.Progress, error) {
	progress := models.Progress{
		UserID:   userID,
		TitleID:  titleID,
		Position: position,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "title_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "updated_at"}),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller always gets the surviving row's id, not a
	// zero id from the conflict path.
	return r.GetProgress(userID, titleID)
}

func (r *progressRepo) GetProgress(userID, titleID uint) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Where("user_id = ? AND title_id = ?", userID, titleID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no progress yet, not an error
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) GetProgressByUser(userID uint) ([]models.Progress, error) {
	var progresses []models.Progress
	err := r.db.Preload("Title").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&progresses).Error
	if err != nil {
		return nil, err
	}
	if progresses == nil {
		progresses = []models.Progress{}
	}
	return progresses, nil
}

func (r *progressRepo) CountProgress() (int64, error) {
	var count int64
	err := r.db.Model(&models.Progress{}).Count(&count).Error
	return count, err
}

func (r *progressRepo) CountDistinctViewers() (int64, error) {
	var count int64
	err := r.db.Model(&models.Progress{}).Distinct("user_id").Count(&count).Error
	return count, err
}

func (r *progressRepo) CountProgressByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Progress{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
