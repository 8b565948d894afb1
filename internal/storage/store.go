package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"printshop/internal/model"
)

// Store saves uploaded design files on local disk. Every upload gets a
// unique stored name, so the directory is append-only and concurrent
// uploads can never collide.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save copies src to disk under a fresh stored name and returns the file
// descriptor to embed in the order.
func (s *Store) Save(src io.Reader, originalName string) (model.FileInfo, error) {
	storedName := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return model.FileInfo{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return model.FileInfo{}, fmt.Errorf("write file: %w", err)
	}

	return model.FileInfo{
		StoredName:   storedName,
		OriginalName: originalName,
		Path:         path,
		Size:         size,
		UploadedAt:   time.Now(),
	}, nil
}

// Remove deletes a stored file. Used to clean up when order creation fails
// after the upload was already written.
func (s *Store) Remove(info model.FileInfo) error {
	if info.Path == "" {
		return nil
	}
	return os.Remove(info.Path)
}
