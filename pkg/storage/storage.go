package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile    = errors.New("uploaded file is empty")
	ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
)

// Storage persists uploaded justification documents on local disk.
// Files are stored flat under basePath with a generated unique name so the
// original filename never reaches the filesystem.
type Storage struct {
	basePath    string
	maxFileSize int64
}

// NewStorage creates the base directory and returns the store.
func NewStorage(basePath string, maxFileSize int64) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &Storage{basePath: basePath, maxFileSize: maxFileSize}, nil
}

// SaveFile stores an uploaded file and returns the generated filename.
func (s *Storage) SaveFile(file *multipart.FileHeader) (string, error) {
	if file.Size == 0 {
		return "", ErrEmptyFile
	}
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return "", ErrFileTooLarge
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.basePath, filename))
	if err != nil {
		return "", fmt.Errorf("creating destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return filename, nil
}

// FilePath resolves a stored filename to its absolute path.
func (s *Storage) FilePath(filename string) string {
	return filepath.Join(s.basePath, filepath.Base(filename))
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Storage) Remove(filename string) error {
	err := os.Remove(s.FilePath(filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
