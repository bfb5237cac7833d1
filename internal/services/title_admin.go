package services

import (
	"errors"
	"strings"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

var (
	ErrMissingFields   = errors.New("name and description are required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrCoverRequired   = errors.New("cover image is required")
	ErrSeriesNotFound  = errors.New("series not found")
	ErrNotASeries      = errors.New("referenced title is not a series")
)

var validAgeRatings = map[string]bool{
	"L": true, "10": true, "12": true, "14": true, "16": true, "18": true,
}

type TitleAdminService interface {
	CreateTitle(req models.TitleCreate) (*models.Title, error)
	UpdateTitle(id uint, req models.TitleUpdate) (*models.Title, error)
	DeleteTitle(id uint) error
	SeedSampleTitle() (*models.Title, error)
}

type titleAdminService struct {
	titleRepo repository.TitleRepository
}

func NewTitleAdminService(titleRepo repository.TitleRepository) TitleAdminService {
	return &titleAdminService{titleRepo: titleRepo}
}

// CreateTitle validates and persists a new catalog entry.
//
// Episodes (seriesId set) must point at an existing series root and
// inherit the parent's cover and genre when not supplied. Standalone
// titles require a cover. A missing hlsPath gets a placeholder so the
// entry can exist before its asset is uploaded.
func (s *titleAdminService) CreateTitle(req models.TitleCreate) (*models.Title, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrMissingFields
	}

	if req.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	durationSeconds := req.Duration * 60

	hlsPath := strings.TrimSpace(req.HLSPath)
	if hlsPath == "" {
		hlsPath = config.GlobalConfig.PlaceholderHLS
	}

	ageRating := "L"
	if validAgeRatings[req.AgeRating] {
		ageRating = req.AgeRating
	}

	titleType := models.TypeMovie
	if req.Type == models.TypeSeries || req.Type == models.TypeMovie {
		titleType = req.Type
	}

	coverURL := req.CoverURL
	genre := req.Genre
	if genre == "" {
		genre = defaultGenre
	}

	var seriesID *uint
	var season, episode *int

	if req.SeriesID != nil && *req.SeriesID > 0 {
		parent, err := s.titleRepo.GetTitleByID(*req.SeriesID)
		if err != nil {
			if errors.Is(err, repository.ErrTitleNotFound) {
				return nil, ErrSeriesNotFound
			}
			return nil, err
		}
		if parent.Type != models.TypeSeries {
			return nil, ErrNotASeries
		}
		if parent.SeriesID != nil {
			// One level deep only: an episode cannot parent another.
			return nil, ErrNotASeries
		}

		id := parent.ID
		seriesID = &id

		if strings.TrimSpace(coverURL) == "" {
			coverURL = parent.CoverURL
		}
		if strings.TrimSpace(req.Genre) == "" {
			genre = parent.Genre
			if genre == "" {
				genre = defaultGenre
			}
		}

		if req.Season != nil && *req.Season > 0 {
			season = req.Season
		}
		if req.Episode != nil && *req.Episode > 0 {
			episode = req.Episode
		}

		// An episode always belongs to the series type.
		titleType = models.TypeSeries
	}

	if seriesID == nil && strings.TrimSpace(coverURL) == "" {
		return nil, ErrCoverRequired
	}

	title := &models.Title{
		Name:        req.Name,
		Description: req.Description,
		CoverURL:    coverURL,
		HLSPath:     hlsPath,
		Duration:    durationSeconds,
		AgeRating:   ageRating,
		Type:        titleType,
		Genre:       genre,
		SeriesID:    seriesID,
		Season:      season,
		Episode:     episode,
	}

	if err := s.titleRepo.CreateTitle(title); err != nil {
		return nil, err
	}
	return title, nil
}

// UpdateTitle applies a partial merge: only supplied fields change.
// Series/episode invariants are not re-checked here, matching the
// historical behavior (a type flip on a series root with episodes is
// allowed).
func (s *titleAdminService) UpdateTitle(id uint, req models.TitleUpdate) (*models.Title, error) {
	if _, err := s.titleRepo.GetTitleByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		fields["name"] = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		fields["description"] = *req.Description
	}
	if req.CoverURL != nil && *req.CoverURL != "" {
		fields["cover_url"] = *req.CoverURL
	}
	if req.HLSPath != nil && *req.HLSPath != "" {
		fields["hls_path"] = *req.HLSPath
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, ErrInvalidDuration
		}
		fields["duration"] = *req.Duration * 60
	}
	if req.AgeRating != nil && validAgeRatings[*req.AgeRating] {
		fields["age_rating"] = *req.AgeRating
	}
	if req.Type != nil && (*req.Type == models.TypeMovie || *req.Type == models.TypeSeries) {
		fields["type"] = *req.Type
	}
	if req.Genre != nil && *req.Genre != "" {
		fields["genre"] = *req.Genre
	}

	if len(fields) > 0 {
		if err := s.titleRepo.UpdateTitle(id, fields); err != nil {
			return nil, err
		}
	}

	return s.titleRepo.GetTitleByID(id)
}

// DeleteTitle removes a title and every favorite/progress row bound
// to it, dependents first.
func (s *titleAdminService) DeleteTitle(id uint) error {
	if _, err := s.titleRepo.GetTitleByID(id); err != nil {
		return err
	}
	return s.titleRepo.DeleteTitleCascade(id)
}

// SeedSampleTitle creates a fixed demo entry for local development.
func (s *titleAdminService) SeedSampleTitle() (*models.Title, error) {
	title := &models.Title{
		Name:        "Sample Movie",
		Description: "Local HLS content generated with FFmpeg.",
		CoverURL:    "/media/capas/exemplo.jpg",
		HLSPath:     "/media/movies/exemplo/master.m3u8",
		Duration:    5400,
		AgeRating:   "L",
		Type:        models.TypeMovie,
		Genre:       defaultGenre,
	}
	if err := s.titleRepo.CreateTitle(title); err != nil {
		return nil, err
	}
	return title, nil
}
