package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/pkg/logger"
)

// LocalStorage saves profile images to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where images are stored
	baseURL  string // public URL prefix the images are served under
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory
// is created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveProfileImage stores an uploaded image under the deterministic name
// {scholarId}-{unixMillis}{ext} and returns that filename.
func (ls *LocalStorage) SaveProfileImage(fileHeader *multipart.FileHeader, scholarID string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%s-%d%s", scholarID, time.Now().UnixMilli(), ext)
	dstPath := filepath.Join(ls.basePath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("Profile image saved")
	return filename, nil
}

// DeleteProfileImage removes a stored image. The default sentinel and
// missing files are skipped silently, so replacing a photo is idempotent.
func (ls *LocalStorage) DeleteProfileImage(filename string) error {
	if filename == "" || filename == models.DefaultProfileImage {
		return nil
	}

	// Only the filename portion is trusted; stored values never carry
	// directories but an attacker-controlled document might.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid file name: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("Old profile image deleted")
	return nil
}

// PublicURL returns the externally visible URL for a stored filename.
func (ls *LocalStorage) PublicURL(filename string) string {
	return ls.baseURL + "/" + filename
}
