package models

// Database model for saving the cache keys.
// Used as fallback when Redis isn't configured.
type CacheBackup struct {
	CacheKey   string `gorm:"primaryKey;autoIncrement:false"`
	CacheValue string `gorm:"type:text"`
}
