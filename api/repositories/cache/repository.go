package repositories

import (
	"context"
	"errors"
	"lolookup/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type CacheRepository interface {
	GetKey(ctx context.Context, key string) (string, bool, error)
	SetKey(ctx context.Context, key string, value string) error
	GetByPrefix(ctx context.Context, prefix string) ([]*models.CacheBackup, error)
}

// Cache repository structure.
type cacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository creates a cache repository.
func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

// GetKey gets the given key value.
// Should be used as a Redis fallback.
func (cr *cacheRepository) GetKey(ctx context.Context, key string) (string, bool, error) {
	var entry models.CacheBackup
	err := cr.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return entry.CacheValue, true, nil
}

// SetKey sets the given key value.
// Should be used as a Redis fallback.
func (cr *cacheRepository) SetKey(ctx context.Context, key string, value string) error {
	entry := &models.CacheBackup{
		CacheKey:   key,
		CacheValue: value,
	}

	// Upsert the cache key.
	return cr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_value"}),
	}).Create(entry).Error
}

// GetByPrefix gets every entry whose key starts with the prefix.
func (cr *cacheRepository) GetByPrefix(ctx context.Context, prefix string) ([]*models.CacheBackup, error) {
	var cacheEntries []*models.CacheBackup

	if err := cr.db.WithContext(ctx).Where("cache_key LIKE ?", prefix+"%").Order("cache_key ASC").Find(&cacheEntries).Error; err != nil {
		return nil, err
	}

	return cacheEntries, nil
}
