package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/duwalace/ZionFlixx/internal/config"
)

var (
	ErrInvalidImageType = errors.New("only image files are allowed for covers (jpg, jpeg, png, gif, webp)")
	ErrInvalidVideoType = errors.New("only video files are allowed (mp4, avi, mov, mkv, webm, m3u8)")
	ErrFileTooLarge     = errors.New("file exceeds the size limit")
)

var coverExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true, ".m3u8": true,
}

// UploadService stores uploaded assets under the media root and hands
// back the /media path the catalog stores. The catalog itself only
// ever sees the resulting path string.
type UploadService interface {
	SaveCover(file *multipart.FileHeader) (string, error)
	SaveVideo(file *multipart.FileHeader) (path string, hint string, err error)
}

type uploadService struct {
	cfg *config.Config
}

func NewUploadService() UploadService {
	return &uploadService{cfg: config.GlobalConfig}
}

func (u *uploadService) SaveCover(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !coverExtensions[ext] {
		return "", ErrInvalidImageType
	}
	if file.Size > u.cfg.MaxCoverSizeMB<<20 {
		return "", ErrFileTooLarge
	}

	filename, err := u.store(file, filepath.Join("capas", "movies"))
	if err != nil {
		return "", err
	}
	return "/media/capas/movies/" + filename, nil
}

// SaveVideo stores a video or HLS playlist. Playlists land in the
// movies directory; raw videos go to uploads and still need HLS
// conversion, which the hint message tells the operator.
func (u *uploadService) SaveVideo(file *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !videoExtensions[ext] {
		return "", "", ErrInvalidVideoType
	}
	if file.Size > u.cfg.MaxVideoSizeMB<<20 {
		return "", "", ErrFileTooLarge
	}

	if ext == ".m3u8" {
		filename, err := u.store(file, "movies")
		if err != nil {
			return "", "", err
		}
		return "/media/movies/" + filename,
			"HLS playlist uploaded. Make sure the .ts segments live in the same folder.",
			nil
	}

	filename, err := u.store(file, "uploads")
	if err != nil {
		return "", "", err
	}
	return "/media/uploads/" + filename,
		"Video uploaded. Convert it to HLS before attaching it to a title.",
		nil
}

// store writes the upload under mediaRoot/subdir with a unique name
// derived from the original filename.
func (u *uploadService) store(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(u.cfg.MediaRoot, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	base := sanitizeFilename(strings.TrimSuffix(filepath.Base(file.Filename), ext))
	filename := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

func sanitizeFilename(name string) string {
	var result []rune
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}
