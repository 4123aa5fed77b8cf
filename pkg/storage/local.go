package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStore accepts a binary blob and a folder hint and returns a durable
// URL. Used by product and organization image uploads only.
type FileStore interface {
	Save(folder, filename string, r io.Reader) (string, error)
}

type localStore struct {
	basePath string
	baseURL  string
	log      *zap.Logger
}

func NewLocalStore(cfg utils.StorageConfig, log *zap.Logger) FileStore {
	return &localStore{
		basePath: cfg.Path,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		log:      log.With(zap.String("storage", "local")),
	}
}

func (s *localStore) Save(folder, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	// Random name keeps uploads from clobbering each other
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file %s: %w", path, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, folder, name)

	s.log.Info("File stored",
		zap.String("path", path),
		zap.String("url", url),
	)

	return url, nil
}
