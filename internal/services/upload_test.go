package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duwalace/ZionFlixx/internal/config"
)

// multipartFile builds a *multipart.FileHeader the way gin would hand
// it to a handler.
func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestSaveCover(t *testing.T) {
	setupTestDB(t)
	svc := NewUploadService()

	path, err := svc.SaveCover(multipartFile(t, "cover", "My Poster.PNG", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("SaveCover: %v", err)
	}
	if !strings.HasPrefix(path, "/media/capas/movies/") || !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected cover path %q", path)
	}

	// The file really landed under the media root.
	onDisk := strings.TrimPrefix(path, "/media/")
	if _, err := os.Stat(filepath.Join(config.GlobalConfig.MediaRoot, filepath.FromSlash(onDisk))); err != nil {
		t.Errorf("stored cover missing on disk: %v", err)
	}
}

func TestSaveCoverRejectsNonImage(t *testing.T) {
	setupTestDB(t)
	svc := NewUploadService()

	_, err := svc.SaveCover(multipartFile(t, "cover", "movie.mp4", []byte("video")))
	if !errors.Is(err, ErrInvalidImageType) {
		t.Errorf("expected ErrInvalidImageType, got %v", err)
	}
}

func TestSaveVideoRouting(t *testing.T) {
	setupTestDB(t)
	svc := NewUploadService()

	path, hint, err := svc.SaveVideo(multipartFile(t, "video", "master.m3u8", []byte("#EXTM3U")))
	if err != nil {
		t.Fatalf("SaveVideo m3u8: %v", err)
	}
	if !strings.HasPrefix(path, "/media/movies/") {
		t.Errorf("m3u8 should land under /media/movies, got %q", path)
	}
	if !strings.Contains(hint, "segments") {
		t.Errorf("m3u8 hint should mention segments, got %q", hint)
	}

	path, hint, err = svc.SaveVideo(multipartFile(t, "video", "raw.mkv", []byte("mkv")))
	if err != nil {
		t.Fatalf("SaveVideo mkv: %v", err)
	}
	if !strings.HasPrefix(path, "/media/uploads/") {
		t.Errorf("raw video should land under /media/uploads, got %q", path)
	}
	if !strings.Contains(hint, "HLS") {
		t.Errorf("raw video hint should mention HLS conversion, got %q", hint)
	}

	if _, _, err := svc.SaveVideo(multipartFile(t, "video", "doc.pdf", []byte("pdf"))); !errors.Is(err, ErrInvalidVideoType) {
		t.Errorf("expected ErrInvalidVideoType, got %v", err)
	}
}
