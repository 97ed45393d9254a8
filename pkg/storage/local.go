package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// LocalURLPrefix is where the server exposes the local assets dir.
const LocalURLPrefix = "/champions"

// LocalStore writes images to a directory served as static files.
type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir string, urlPrefix string) *LocalStore {
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}
}

// Dir returns the directory the images are written to.
func (l *LocalStore) Dir() string {
	return l.dir
}

func (l *LocalStore) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("couldn't create the assets dir %s: %w", l.dir, err)
	}

	// Only the base name is used so a name can't escape the directory.
	fileName := filepath.Base(name)
	if err := os.WriteFile(filepath.Join(l.dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("couldn't write %s: %w", fileName, err)
	}

	return path.Join(l.urlPrefix, fileName), nil
}
