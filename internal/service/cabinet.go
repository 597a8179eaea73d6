package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cabinet is the transfer view of a cabinet.
type Cabinet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func cabinetView(cabinet *model.Cabinet) *Cabinet {
	return &Cabinet{
		ID:          cabinet.ID,
		Name:        cabinet.Name,
		Description: cabinet.Description,
		CreatedBy:   cabinet.CreatedBy,
		CreatedAt:   cabinet.CreatedAt,
	}
}

// NewCabinetService creates a new CabinetService.
func NewCabinetService(store store.Store, bin *RecycleBinService, audit Sink) *CabinetService {
	return &CabinetService{
		store: store,
		bin:   bin,
		audit: audit,
	}
}

type CabinetService struct {
	store store.Store
	bin   *RecycleBinService
	audit Sink
}

func (c *CabinetService) CreateCabinet(ctx context.Context, name, description, actor string) (*Cabinet, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: cabinet name is required", ErrValidation)
	}

	cabinet := &model.Cabinet{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedBy:   actor,
	}

	if err := c.store.CreateCabinet(ctx, cabinet); err != nil {
		return nil, err
	}

	c.audit.Record(ctx, model.NodeTypeCabinet, cabinet.ID, "cabinet.create", name, actor)

	return cabinetView(cabinet), nil
}

func (c *CabinetService) GetCabinet(ctx context.Context, id uuid.UUID) (*Cabinet, error) {
	cabinet, err := c.store.GetCabinet(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, err
	}

	return cabinetView(cabinet), nil
}

func (c *CabinetService) ListCabinets(ctx context.Context) ([]*Cabinet, error) {
	cabinets, err := c.store.ListCabinets(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*Cabinet, 0, len(cabinets))
	for _, cabinet := range cabinets {
		result = append(result, cabinetView(cabinet))
	}

	return result, nil
}

func (c *CabinetService) UpdateCabinet(ctx context.Context, id uuid.UUID, name, description, actor string) (*Cabinet, error) {
	cabinet, err := c.store.GetCabinet(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, err
	}

	if name != "" {
		cabinet.Name = name
	}
	cabinet.Description = description

	if err := c.store.UpdateCabinet(ctx, cabinet); err != nil {
		return nil, err
	}

	c.audit.Record(ctx, model.NodeTypeCabinet, cabinet.ID, "cabinet.update", cabinet.Name, actor)

	return cabinetView(cabinet), nil
}

// DeleteCabinet soft deletes a cabinet and everything under it. Every
// descendant folder and document gets its own tombstone, so each can be
// restored independently. Each node is tombstoned before its live row is
// removed.
func (c *CabinetService) DeleteCabinet(ctx context.Context, id uuid.UUID, actor string) error {
	cabinet, err := c.store.GetCabinet(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCabinetNotFound
		}
		return err
	}

	folders, err := c.store.ListFolders(ctx, id)
	if err != nil {
		return err
	}

	tombstoned := mapset.NewSet[string]()
	for _, folder := range folders {
		folderID, err := uuid.Parse(folder.ID)
		if err != nil {
			continue
		}

		docs, err := c.store.ListDocuments(ctx, folderID)
		if err != nil {
			return err
		}

		for _, doc := range docs {
			docID, err := uuid.Parse(doc.ID)
			if err != nil {
				continue
			}

			folderIDCopy := doc.FolderID
			if _, err := c.bin.SoftDelete(ctx, model.NodeTypeDocument, docID, doc.Title,
				folder.Path+"/"+doc.Title, &folderIDCopy, actor, documentSnapshot(doc)); err != nil {
				return err
			}
			if err := c.store.DeleteDocument(ctx, docID); err != nil {
				return err
			}
			tombstoned.Add(doc.ID)
		}

		if _, err := c.bin.SoftDelete(ctx, model.NodeTypeFolder, folderID, folder.Name,
			folder.Path, folder.ParentID, actor, folderSnapshot(folder)); err != nil {
			return err
		}
		if err := c.store.DeleteFolder(ctx, folderID); err != nil {
			return err
		}
		tombstoned.Add(folder.ID)
	}

	if _, err := c.bin.SoftDelete(ctx, model.NodeTypeCabinet, id, cabinet.Name,
		"/"+cabinet.Name, nil, actor, cabinetSnapshot(cabinet)); err != nil {
		return err
	}
	if err := c.store.DeleteCabinet(ctx, id); err != nil {
		return err
	}

	c.audit.Record(ctx, model.NodeTypeCabinet, cabinet.ID, "cabinet.delete",
		fmt.Sprintf("%s deleted with %d descendants", cabinet.Name, tombstoned.Cardinality()), actor)

	return nil
}
