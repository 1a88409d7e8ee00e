package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/BruksfildServices01/restaurant-booking/internal/config"
)

// MediaStorage guarda as imagens do cardápio e devolve a URL pública
type MediaStorage interface {
	Save(
		ctx context.Context,
		key string,
		contentType string,
		body io.Reader,
	) (string, error)
}

func NewFromConfig(cfg *config.Config) (MediaStorage, error) {
	switch cfg.StorageBackend {
	case "s3":
		return NewS3Storage(cfg)
	case "local", "":
		return NewLocalStorage(cfg.LocalMediaDir, cfg.MediaBaseURL), nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
}
