package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder is the transfer view of a folder.
type Folder struct {
	ID        string    `json:"id"`
	CabinetID string    `json:"cabinetId"`
	ParentID  *string   `json:"parentId,omitempty"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func folderView(folder *model.Folder) *Folder {
	return &Folder{
		ID:        folder.ID,
		CabinetID: folder.CabinetID,
		ParentID:  folder.ParentID,
		Name:      folder.Name,
		Path:      folder.Path,
		CreatedBy: folder.CreatedBy,
		CreatedAt: folder.CreatedAt,
	}
}

// NewFolderService creates a new FolderService.
func NewFolderService(store store.Store, bin *RecycleBinService, audit Sink) *FolderService {
	return &FolderService{
		store: store,
		bin:   bin,
		audit: audit,
	}
}

type FolderService struct {
	store store.Store
	bin   *RecycleBinService
	audit Sink
}

// CreateFolder creates a folder at the cabinet root (nil parent) or
// under a parent folder in the same cabinet.
func (f *FolderService) CreateFolder(ctx context.Context, cabinetID uuid.UUID, parentID *uuid.UUID, name, actor string) (*Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrValidation)
	}

	cabinet, err := f.store.GetCabinet(ctx, cabinetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, err
	}

	path := "/" + cabinet.Name + "/" + name
	var parentRef *string
	if parentID != nil {
		parent, err := f.store.GetFolder(ctx, *parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFolderNotFound
			}
			return nil, err
		}
		if parent.CabinetID != cabinet.ID {
			return nil, fmt.Errorf("%w: parent folder belongs to another cabinet", ErrValidation)
		}
		path = parent.Path + "/" + name
		id := parent.ID
		parentRef = &id
	}

	folder := &model.Folder{
		ID:        uuid.New().String(),
		CabinetID: cabinet.ID,
		ParentID:  parentRef,
		Name:      name,
		Path:      path,
		CreatedBy: actor,
	}

	if err := f.store.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}

	f.audit.Record(ctx, model.NodeTypeFolder, folder.ID, "folder.create", path, actor)

	return folderView(folder), nil
}

func (f *FolderService) GetFolder(ctx context.Context, id uuid.UUID) (*Folder, error) {
	folder, err := f.store.GetFolder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	return folderView(folder), nil
}

// ListFolders returns every folder in a cabinet, ordered by path.
func (f *FolderService) ListFolders(ctx context.Context, cabinetID uuid.UUID) ([]*Folder, error) {
	folders, err := f.store.ListFolders(ctx, cabinetID)
	if err != nil {
		return nil, err
	}

	result := make([]*Folder, 0, len(folders))
	for _, folder := range folders {
		result = append(result, folderView(folder))
	}

	return result, nil
}

// RenameFolder changes a folder's name and recomputes its own path.
// TODO: recompute descendant folder paths on rename.
func (f *FolderService) RenameFolder(ctx context.Context, id uuid.UUID, name, actor string) (*Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrValidation)
	}

	folder, err := f.store.GetFolder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	parentPath := folder.Path[:len(folder.Path)-len(folder.Name)-1]
	folder.Name = name
	folder.Path = parentPath + "/" + name

	if err := f.store.UpdateFolder(ctx, folder); err != nil {
		return nil, err
	}

	f.audit.Record(ctx, model.NodeTypeFolder, folder.ID, "folder.rename", folder.Path, actor)

	return folderView(folder), nil
}

// DeleteFolder soft deletes a folder, its documents and its child
// folders recursively, one tombstone per node, tombstone first.
func (f *FolderService) DeleteFolder(ctx context.Context, id uuid.UUID, actor string) error {
	folder, err := f.store.GetFolder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFolderNotFound
		}
		return err
	}

	if err := f.deleteTree(ctx, folder, actor); err != nil {
		return err
	}

	f.audit.Record(ctx, model.NodeTypeFolder, folder.ID, "folder.delete", folder.Path, actor)

	return nil
}

func (f *FolderService) deleteTree(ctx context.Context, folder *model.Folder, actor string) error {
	folderID, err := uuid.Parse(folder.ID)
	if err != nil {
		return err
	}

	children, err := f.store.ListChildFolders(ctx, folderID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := f.deleteTree(ctx, child, actor); err != nil {
			return err
		}
	}

	docs, err := f.store.ListDocuments(ctx, folderID)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		docID, err := uuid.Parse(doc.ID)
		if err != nil {
			continue
		}

		folderRef := doc.FolderID
		if _, err := f.bin.SoftDelete(ctx, model.NodeTypeDocument, docID, doc.Title,
			folder.Path+"/"+doc.Title, &folderRef, actor, documentSnapshot(doc)); err != nil {
			return err
		}
		if err := f.store.DeleteDocument(ctx, docID); err != nil {
			return err
		}
	}

	if _, err := f.bin.SoftDelete(ctx, model.NodeTypeFolder, folderID, folder.Name,
		folder.Path, folder.ParentID, actor, folderSnapshot(folder)); err != nil {
		return err
	}

	return f.store.DeleteFolder(ctx, folderID)
}
