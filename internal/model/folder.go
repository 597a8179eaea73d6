package model

import "time"

// Folder lives inside a cabinet. ParentID is nil for folders at the
// cabinet root. Path is the materialized display path, e.g. "/Finance/Reports".
type Folder struct {
	ID        string  `gorm:"primaryKey;uuid;not null"`
	CabinetID string  `gorm:"uuid;not null;index"`
	ParentID  *string `gorm:"uuid;index"`
	Name      string  `gorm:"not null"`
	Path      string  `gorm:"not null"`
	CreatedBy string  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *Folder) TableName() string {
	return "folders"
}
