package model

import "time"

// DocumentVersion records one checked-in revision of a document. The
// content bytes are stored through a storage provider at StoragePath;
// Compression names the codec used to encode them at rest.
type DocumentVersion struct {
	ID              string `gorm:"primaryKey;uuid;not null"`
	DocumentID      string `gorm:"uuid;not null;uniqueIndex:idx_document_versions_doc_number"`
	Number          int64  `gorm:"not null;uniqueIndex:idx_document_versions_doc_number"`
	StoragePath     string `gorm:"not null"`
	StorageProvider string `gorm:"not null"`
	Size            int64
	Comment         string
	Compression     string
	CreatedBy       string `gorm:"not null"`
	CreatedAt       time.Time
}

func (v *DocumentVersion) TableName() string {
	return "document_versions"
}
