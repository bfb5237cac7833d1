package models

import (
	"time"
)

const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// Title is a catalog entry: a movie, a series root, or an episode.
// Episodes carry a SeriesID pointing at their series root; the
// hierarchy is one level deep (a parent never has a SeriesID itself).
type Title struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	CoverURL    string    `json:"coverUrl"`
	HLSPath     string    `json:"hlsPath"`
	Duration    int       `gorm:"not null" json:"duration"` // seconds
	AgeRating   string    `gorm:"type:varchar(2);default:'L'" json:"ageRating"`
	Type        string    `gorm:"type:varchar(10);default:'movie'" json:"type"`
	Genre       string    `gorm:"type:varchar(100);default:'Drama'" json:"genre"`
	SeriesID    *uint     `gorm:"index" json:"seriesId"`
	Season      *int      `json:"season"`
	Episode     *int      `json:"episode"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relationships
	Episodes []Title `gorm:"foreignKey:SeriesID" json:"-"`
}

// TitleCreate carries the admin create payload. Duration arrives in
// minutes (the admin form sends minutes) and is stored in seconds.
type TitleCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
	HLSPath     string `json:"hlsPath"`
	Duration    int    `json:"duration"`
	AgeRating   string `json:"ageRating"`
	Type        string `json:"type"`
	Genre       string `json:"genre"`
	SeriesID    *uint  `json:"seriesId"`
	Season      *int   `json:"season"`
	Episode     *int   `json:"episode"`
}

// TitleUpdate carries the admin update payload; nil fields are left
// untouched.
type TitleUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CoverURL    *string `json:"coverUrl"`
	HLSPath     *string `json:"hlsPath"`
	Duration    *int    `json:"duration"` // minutes
	AgeRating   *string `json:"ageRating"`
	Type        *string `json:"type"`
	Genre       *string `json:"genre"`
}

type AgeRatingStat struct {
	Rating string `json:"rating"`
	Count  int64  `json:"count"`
}
