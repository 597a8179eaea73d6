package model

import "time"

// WorkflowStatus is a named status documents can carry, e.g. Draft,
// In Review, Approved.
type WorkflowStatus struct {
	ID        string `gorm:"primaryKey;uuid;not null"`
	Name      string `gorm:"not null;uniqueIndex"`
	Color     string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *WorkflowStatus) TableName() string {
	return "workflow_statuses"
}
