package model

import "time"

// RecycleBinItem is a tombstone for a soft deleted node. Metadata holds a
// gzip encoded JSON snapshot of the type specific fields needed to
// recreate the live record on restore. The tombstone is written before
// the live record is removed, never after.
type RecycleBinItem struct {
	ID               string   `gorm:"primaryKey;uuid;not null"`
	NodeType         NodeType `gorm:"not null;index"`
	NodeID           string   `gorm:"uuid;not null;index"`
	NodeName         string   `gorm:"not null"`
	OriginalPath     string
	OriginalParentID *string `gorm:"uuid"`
	DeletedBy        string  `gorm:"not null"`
	DeletedAt        time.Time
	ExpiresAt        time.Time `gorm:"not null;index"`
	Metadata         []byte
}

func (r *RecycleBinItem) TableName() string {
	return "recycle_bin_items"
}
