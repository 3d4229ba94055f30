package models

import (
	"time"

	"gorm.io/gorm"
)

type MaterialCategory string

const (
	CategoryUGTRB   MaterialCategory = "UG_TRB"
	CategoryPGTRB   MaterialCategory = "PG_TRB"
	CategoryGeneral MaterialCategory = "General"
)

type Material struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description"`
	Price       float64          `gorm:"not null" json:"price"`
	Category    MaterialCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	Pages       int              `json:"pages"`
	Format      string           `json:"format"` // e.g. "PDF", "Printed"
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// SampleMaterial is a free excerpt; the file URL is only served to
// verified profiles.
type SampleMaterial struct {
	ID         uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string           `gorm:"not null" json:"title"`
	Category   MaterialCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	FileURL    string           `gorm:"not null" json:"file_url"`
	MaterialID *uint            `json:"material_id"`
	CreatedAt  time.Time        `json:"created_at"`
}
