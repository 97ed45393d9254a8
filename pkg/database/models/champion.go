package models

import "time"

// Champion catalog entry built from the static data.
type Champion struct {
	ID           int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Key          string    `gorm:"type:varchar(30)" json:"key"`
	Name         string    `gorm:"type:varchar(30);index" json:"name"`
	Title        string    `gorm:"type:varchar(100)" json:"title"`
	ThumbnailUrl string    `gorm:"type:varchar(255)" json:"thumbnailUrl"`
	SplashUrl    string    `gorm:"type:varchar(255)" json:"splashUrl"`
	Version      string    `gorm:"type:varchar(20)" json:"version"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
