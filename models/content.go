package models

import "time"

// Test is a mock test; access requires an approved profile.
type Test struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string           `gorm:"not null" json:"title"`
	Category        MaterialCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	DurationMinutes int              `json:"duration_minutes"`
	Questions       int              `json:"questions"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
}

type YoutubeVideo struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string           `gorm:"not null" json:"title"`
	VideoID   string           `gorm:"not null" json:"video_id"` // YouTube watch id, not a full URL
	Category  MaterialCategory `gorm:"type:VARCHAR(20)" json:"category"`
	CreatedAt time.Time        `json:"created_at"`
}
