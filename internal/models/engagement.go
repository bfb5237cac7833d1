package models

import (
	"time"
)

// Progress is the last known playback position for a (user, title)
// pair. The composite unique index makes the playback save an upsert:
// concurrent saves from the same pair converge to a single row.
type Progress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_progress_user_title" json:"userId"`
	TitleID   uint      `gorm:"not null;uniqueIndex:idx_progress_user_title" json:"titleId"`
	Position  int       `gorm:"not null;default:0" json:"position"` // seconds
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Title Title `gorm:"foreignKey:TitleID" json:"-"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_title" json:"userId"`
	TitleID   uint      `gorm:"not null;uniqueIndex:idx_favorites_user_title" json:"titleId"`
	CreatedAt time.Time `json:"-"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Title Title `gorm:"foreignKey:TitleID" json:"-"`
}

type ProgressSave struct {
	TitleID  uint `json:"titleId" binding:"required"`
	Position *int `json:"position" binding:"required"` // pointer so position 0 passes binding
}

type FavoriteAdd struct {
	TitleID uint `json:"titleId" binding:"required"`
}

// ContinueWatchingItem pairs an unfinished progress row with its title
// for the home screen rail.
type ContinueWatchingItem struct {
	ID       uint  `json:"id"`
	TitleID  uint  `json:"titleId"`
	Position int   `json:"position"`
	Title    Title `json:"title"`
}
