package database

import (
	"fmt"
	"lolookup/pkg/database/models"

	"gorm.io/gorm"
)

const migrationsLockKey = "lolookup_migrations_lock"

// Migrate applies the schema for every model.
// On Postgres an advisory lock keeps the server and the CLI from migrating at the same time.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return db.AutoMigrate(models.All()...)
	}

	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(hashtext(?))", migrationsLockKey).Error; err != nil {
			return fmt.Errorf("could not acquire the migrations lock: %w", err)
		}
		defer conn.Exec("SELECT pg_advisory_unlock(hashtext(?))", migrationsLockKey)

		if err := conn.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("could not run migrations: %w", err)
		}

		return CreateCustomIndexes(conn)
	})
}

// CreateCustomIndexes creates the indexes AutoMigrate can't express.
func CreateCustomIndexes(db *gorm.DB) error {
	// Case-insensitive identity lookups.
	searchIndex := `
		CREATE INDEX IF NOT EXISTS idx_player_identity_lower ON player_infos (
		  LOWER(riot_id_game_name),
		  LOWER(riot_id_tagline),
		  region
		) WHERE riot_id_game_name != '';`
	return db.Exec(searchIndex).Error
}
