package model

import "time"

// ActivityLog is an append only audit entry. Rows are never updated or
// deleted by normal operation.
type ActivityLog struct {
	ID        string   `gorm:"primaryKey;uuid;not null"`
	NodeType  NodeType `gorm:"not null"`
	NodeID    string   `gorm:"uuid;not null;index"`
	Action    string   `gorm:"not null"`
	Details   string
	UserID    string `gorm:"not null"`
	CreatedAt time.Time
}

func (a *ActivityLog) TableName() string {
	return "activity_log"
}
