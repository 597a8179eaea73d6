package model

import "time"

// DocumentLink is a directed, typed edge between two documents.
// The ordered (source, target) pair is unique; A->B and B->A are
// independent edges. Uniqueness is enforced by the index, not by an
// application level check, so concurrent inserts cannot race past it.
type DocumentLink struct {
	ID          string `gorm:"primaryKey;uuid;not null"`
	SourceID    string `gorm:"uuid;not null;index:idx_document_links_source_id;uniqueIndex:idx_document_links_pair"`
	TargetID    string `gorm:"uuid;not null;index:idx_document_links_target_id;uniqueIndex:idx_document_links_pair"`
	LinkType    string `gorm:"not null"`
	Description string
	CreatedBy   string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l *DocumentLink) TableName() string {
	return "document_links"
}
