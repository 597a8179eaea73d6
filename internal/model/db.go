package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Cabinet{},
		&Folder{},
		&Document{},
		&DocumentVersion{},
		&DocumentLink{},
		&DocumentShortcut{},
		&RecycleBinItem{},
		&ActivityLog{},
		&WorkflowStatus{},
	)
}
