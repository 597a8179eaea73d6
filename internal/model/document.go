package model

import "time"

// Document metadata. Content bytes live behind a storage provider; the
// document only records the provider name and the relative path of the
// latest version.
type Document struct {
	ID              string `gorm:"primaryKey;uuid;not null"`
	FolderID        string `gorm:"uuid;not null;index"`
	Title           string `gorm:"not null"`
	FileName        string
	ContentType     string
	StoragePath     string
	StorageProvider string
	// RetentionHold routes content writes to the immutable provider.
	RetentionHold bool   `gorm:"not null;default:false"`
	StatusID      *string `gorm:"uuid;index"`
	Version       int64  `gorm:"not null;default:1"`
	CheckedOutBy  *string
	CheckedOutAt  *time.Time
	CreatedBy     string `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d *Document) TableName() string {
	return "documents"
}
