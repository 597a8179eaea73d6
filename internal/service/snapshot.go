package service

import "github.com/emrgen/cabinet/internal/model"

// Snapshot builders. The schema of each payload is owned by the entity
// type and only decoded again at restore time.

func cabinetSnapshot(cabinet *model.Cabinet) map[string]any {
	return map[string]any{
		"description": cabinet.Description,
		"createdBy":   cabinet.CreatedBy,
	}
}

func folderSnapshot(folder *model.Folder) map[string]any {
	return map[string]any{
		"cabinetId": folder.CabinetID,
		"createdBy": folder.CreatedBy,
	}
}

func documentSnapshot(doc *model.Document) map[string]any {
	snapshot := map[string]any{
		"fileName":        doc.FileName,
		"contentType":     doc.ContentType,
		"storagePath":     doc.StoragePath,
		"storageProvider": doc.StorageProvider,
		"retentionHold":   doc.RetentionHold,
		"version":         doc.Version,
		"createdBy":       doc.CreatedBy,
	}
	if doc.StatusID != nil {
		snapshot["statusId"] = *doc.StatusID
	}
	return snapshot
}
