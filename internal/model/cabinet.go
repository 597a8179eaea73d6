package model

import "time"

// Cabinet is a top level container for folders and documents.
type Cabinet struct {
	ID          string `gorm:"primaryKey;uuid;not null"`
	Name        string `gorm:"not null"`
	Description string
	CreatedBy   string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Cabinet) TableName() string {
	return "cabinets"
}
