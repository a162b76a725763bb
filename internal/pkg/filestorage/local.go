package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/maithili/projectvault/internal/pkg/logger"
)

// ReportStorage stores uploaded report files and resolves stored
// filenames back to paths for download.
type ReportStorage interface {
	SaveReport(fileHeader *multipart.FileHeader) (string, error)
	Path(filename string) (string, bool)
}

// LocalStorage handles saving files on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveReport writes an uploaded file under a unique name and returns
// the stored filename.
func (ls *LocalStorage) SaveReport(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Unique stored name, original extension preserved
	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext

	dstPath := filepath.Join(ls.basePath, storedName)
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

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved successfully")
	return storedName, nil
}

// Path resolves a stored filename to its filesystem path. The second
// return is false when the file does not exist or the name tries to
// escape the storage root.
func (ls *LocalStorage) Path(filename string) (string, bool) {
	base := filepath.Base(filename)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", false
	}

	fullPath := filepath.Join(ls.basePath, base)
	if _, err := os.Stat(fullPath); err != nil {
		return "", false
	}
	return fullPath, true
}

// BasePath returns the storage root, used for static serving
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
