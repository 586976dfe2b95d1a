package models

import "time"

// Game represents one game in the collection.
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:100;not null"`
	Description string  `gorm:"size:500;not null"`
	Developer   string  `gorm:"size:100"`
	Publisher   string  `gorm:"size:100"`
	ReleaseDate string  `gorm:"size:10"` // mm-dd-yyyy, kept as text on purpose
	Completed   bool    `gorm:"not null;default:false"`
	Filename    *string `gorm:"size:255"` // on-disk name of the cover image, nil when never attached
	CreatedAt   time.Time
}
