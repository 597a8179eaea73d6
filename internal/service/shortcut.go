package service

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shortcut is the transfer view of a placement, denormalized with the
// document and folder display names for the UI.
type Shortcut struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"documentId"`
	FolderID     string    `json:"folderId"`
	DocumentName string    `json:"documentName"`
	FolderName   string    `json:"folderName"`
	FolderPath   string    `json:"folderPath"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewShortcutService creates a new ShortcutService.
func NewShortcutService(store store.Store) *ShortcutService {
	return &ShortcutService{store: store}
}

// ShortcutService places documents into additional folders without
// duplicating them. Shortcuts do not own the document and write no
// activity entries.
type ShortcutService struct {
	store store.Store
}

// CreateShortcut places a document into a folder other than its own.
// Both references are validated; the (document, folder) unique index is
// the duplicate authority.
func (s *ShortcutService) CreateShortcut(ctx context.Context, docID, folderID uuid.UUID, actor string) (*Shortcut, error) {
	doc, err := s.store.GetDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	folder, err := s.store.GetFolder(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	if doc.FolderID == folder.ID {
		return nil, ErrSelfFolder
	}

	shortcut := &model.DocumentShortcut{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		FolderID:   folder.ID,
		CreatedBy:  actor,
	}

	if err := s.store.CreateShortcut(ctx, shortcut); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateShortcut
		}
		return nil, err
	}

	return &Shortcut{
		ID:           shortcut.ID,
		DocumentID:   doc.ID,
		FolderID:     folder.ID,
		DocumentName: doc.Title,
		FolderName:   folder.Name,
		FolderPath:   folder.Path,
		CreatedBy:    actor,
		CreatedAt:    shortcut.CreatedAt,
	}, nil
}

// RemoveShortcut deletes a placement. Removing an already removed
// shortcut reports NotFound, never a second success.
func (s *ShortcutService) RemoveShortcut(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteShortcut(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

// ListShortcutsForDocument returns the placements of a document in
// insertion order, with folder names resolved at read time.
func (s *ShortcutService) ListShortcutsForDocument(ctx context.Context, docID uuid.UUID) ([]*Shortcut, error) {
	doc, err := s.store.GetDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	shortcuts, err := s.store.ListShortcutsForDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	result := make([]*Shortcut, 0, len(shortcuts))
	for _, shortcut := range shortcuts {
		view := &Shortcut{
			ID:           shortcut.ID,
			DocumentID:   shortcut.DocumentID,
			FolderID:     shortcut.FolderID,
			DocumentName: doc.Title,
			CreatedBy:    shortcut.CreatedBy,
			CreatedAt:    shortcut.CreatedAt,
		}

		folderID, err := uuid.Parse(shortcut.FolderID)
		if err == nil {
			if folder, err := s.store.GetFolder(ctx, folderID); err == nil {
				view.FolderName = folder.Name
				view.FolderPath = folder.Path
			}
		}

		result = append(result, view)
	}

	return result, nil
}
