package model

import "time"

// DocumentShortcut places a document into an additional folder without
// duplicating it. It is a weak reference; the document keeps exactly one
// canonical folder. The (document, folder) pair is unique at the index.
type DocumentShortcut struct {
	ID         string `gorm:"primaryKey;uuid;not null"`
	DocumentID string `gorm:"uuid;not null;uniqueIndex:idx_document_shortcuts_pair"`
	FolderID   string `gorm:"uuid;not null;uniqueIndex:idx_document_shortcuts_pair;index:idx_document_shortcuts_folder_id"`
	CreatedBy  string `gorm:"not null"`
	CreatedAt  time.Time
}

func (s *DocumentShortcut) TableName() string {
	return "document_shortcuts"
}
