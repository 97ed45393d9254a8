package storage

import (
	"context"
	"lolookup/pkg/config"
)

// ImageStore saves champion images and returns the URL they are served from.
type ImageStore interface {
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// NewImageStore uses the bucket when one is configured, the local assets dir otherwise.
func NewImageStore(cfg *config.Config) ImageStore {
	if cfg.Bucket.Name != "" {
		return NewS3Store(cfg.Bucket)
	}
	return NewLocalStore(cfg.AssetsDir, LocalURLPrefix)
}
