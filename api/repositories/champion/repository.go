package repositories

import (
	"context"
	"errors"
	"fmt"
	"lolookup/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChampionRepository is the public interface for accessing the champion catalog.
type ChampionRepository interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]models.Champion, error)
	FindById(ctx context.Context, id int) (*models.Champion, error)
	Upsert(ctx context.Context, champion *models.Champion) error
}

type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a champion repository.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

func (cr *championRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := cr.db.WithContext(ctx).Model(&models.Champion{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("couldn't count the champions: %w", err)
	}
	return count, nil
}

// FindAll returns the catalog ordered by name.
func (cr *championRepository) FindAll(ctx context.Context) ([]models.Champion, error) {
	var champions []models.Champion
	if err := cr.db.WithContext(ctx).Order("name ASC").Find(&champions).Error; err != nil {
		return nil, fmt.Errorf("couldn't get the champions: %w", err)
	}
	return champions, nil
}

// FindById returns nil when the champion doesn't exist.
func (cr *championRepository) FindById(ctx context.Context, id int) (*models.Champion, error) {
	var champion models.Champion
	if err := cr.db.WithContext(ctx).First(&champion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the champion %d: %w", id, err)
	}
	return &champion, nil
}

// Upsert creates or overwrites a champion keyed by its numeric id.
func (cr *championRepository) Upsert(ctx context.Context, champion *models.Champion) error {
	err := cr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(champion).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the champion %s: %w", champion.Name, err)
	}
	return nil
}
