package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emrgen/cabinet/internal/compress"
	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/storage"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecycleBinEntry is the transfer view of a tombstone.
type RecycleBinEntry struct {
	ID               string         `json:"id"`
	NodeType         model.NodeType `json:"nodeType"`
	NodeID           string         `json:"nodeId"`
	NodeName         string         `json:"nodeName"`
	OriginalPath     string         `json:"originalPath"`
	OriginalParentID *string        `json:"originalParentId,omitempty"`
	DeletedBy        string         `json:"deletedBy"`
	DeletedAt        time.Time      `json:"deletedAt"`
	ExpiresAt        time.Time      `json:"expiresAt"`
}

func recycleBinView(item *model.RecycleBinItem) *RecycleBinEntry {
	return &RecycleBinEntry{
		ID:               item.ID,
		NodeType:         item.NodeType,
		NodeID:           item.NodeID,
		NodeName:         item.NodeName,
		OriginalPath:     item.OriginalPath,
		OriginalParentID: item.OriginalParentID,
		DeletedBy:        item.DeletedBy,
		DeletedAt:        item.DeletedAt,
		ExpiresAt:        item.ExpiresAt,
	}
}

// NewRecycleBinService creates a new RecycleBinService. Retention bounds
// how long tombstones are restorable before the cleaner purges them.
func NewRecycleBinService(store store.Store, providers *storage.Registry, codec compress.Compress, audit Sink, retention time.Duration) *RecycleBinService {
	return &RecycleBinService{
		store:     store,
		providers: providers,
		codec:     codec,
		audit:     audit,
		retention: retention,
	}
}

// RecycleBinService manages tombstones for soft deleted nodes. A node
// moves Live -> Tombstoned -> Live (restore) or Tombstoned -> Gone
// (purge, terminal). The tombstone is always written before the caller
// removes the live record, so a failed removal leaves a retryable state
// instead of a lost node.
type RecycleBinService struct {
	store     store.Store
	providers *storage.Registry
	codec     compress.Compress
	audit     Sink
	retention time.Duration
}

// SoftDelete writes a tombstone capturing enough state to reconstruct
// the node. The caller removes the live record afterwards, never before.
func (r *RecycleBinService) SoftDelete(ctx context.Context, nodeType model.NodeType, nodeID uuid.UUID, name, originalPath string, originalParentID *string, actor string, snapshot map[string]any) (*RecycleBinEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: node name is required", ErrValidation)
	}

	metadata, err := r.encodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	item := &model.RecycleBinItem{
		ID:               uuid.New().String(),
		NodeType:         nodeType,
		NodeID:           nodeID.String(),
		NodeName:         name,
		OriginalPath:     originalPath,
		OriginalParentID: originalParentID,
		DeletedBy:        actor,
		DeletedAt:        time.Now(),
		ExpiresAt:        time.Now().Add(r.retention),
		Metadata:         metadata,
	}

	if err := r.store.CreateRecycleBinItem(ctx, item); err != nil {
		return nil, err
	}

	r.audit.Record(ctx, nodeType, nodeID.String(), "recyclebin.delete",
		fmt.Sprintf("%s moved to recycle bin from %s", name, originalPath), actor)

	return recycleBinView(item), nil
}

// Restore recreates the live node from the tombstone snapshot at its
// original placement and removes the tombstone. A non nil original parent
// that no longer exists fails with ErrOrphanedParent; nodes are never
// silently reparented to root.
func (r *RecycleBinService) Restore(ctx context.Context, tombstoneID uuid.UUID, actor string) (*RecycleBinEntry, error) {
	item, err := r.store.GetRecycleBinItem(ctx, tombstoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	snapshot, err := r.decodeSnapshot(item.Metadata)
	if err != nil {
		return nil, err
	}

	if err := r.checkParent(ctx, item, snapshot); err != nil {
		return nil, err
	}

	err = r.store.Transaction(ctx, func(tx store.Store) error {
		if err := r.recreate(ctx, tx, item, snapshot); err != nil {
			return err
		}
		return tx.DeleteRecycleBinItem(ctx, tombstoneID)
	})
	if err != nil {
		return nil, err
	}

	r.audit.Record(ctx, item.NodeType, item.NodeID, "recyclebin.restore",
		fmt.Sprintf("%s restored to %s", item.NodeName, item.OriginalPath), actor)

	return recycleBinView(item), nil
}

// Purge permanently discards a tombstone. Document content owned by the
// tombstoned node is deleted through the provider that stored it; an
// immutable provider denies and the denial is logged, but the tombstone
// still goes away.
func (r *RecycleBinService) Purge(ctx context.Context, tombstoneID uuid.UUID, actor string) error {
	item, err := r.store.GetRecycleBinItem(ctx, tombstoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if item.NodeType == model.NodeTypeDocument {
		if err := r.purgeContent(ctx, item); err != nil {
			return err
		}
	}

	if err := r.store.DeleteRecycleBinItem(ctx, tombstoneID); err != nil {
		return err
	}

	r.audit.Record(ctx, item.NodeType, item.NodeID, "recyclebin.purge",
		fmt.Sprintf("%s purged", item.NodeName), actor)

	return nil
}

// List returns all tombstones, newest first.
func (r *RecycleBinService) List(ctx context.Context) ([]*RecycleBinEntry, error) {
	items, err := r.store.ListRecycleBinItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*RecycleBinEntry, 0, len(items))
	for _, item := range items {
		result = append(result, recycleBinView(item))
	}

	return result, nil
}

// PurgeExpired purges every tombstone past its retention window and
// returns the number purged. Used by the retention cleaner and the CLI.
func (r *RecycleBinService) PurgeExpired(ctx context.Context) (int, error) {
	items, err := r.store.ListExpiredRecycleBinItems(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, item := range items {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			continue
		}
		if err := r.Purge(ctx, id, "retention"); err != nil {
			logrus.Errorf("recyclebin: failed to purge expired tombstone %s: %v", item.ID, err)
			continue
		}
		purged++
	}

	return purged, nil
}

// purgeContent deletes the stored bytes of every version of a tombstoned
// document, removes its version rows and any shortcut placements.
func (r *RecycleBinService) purgeContent(ctx context.Context, item *model.RecycleBinItem) error {
	docID, err := uuid.Parse(item.NodeID)
	if err != nil {
		return err
	}

	versions, err := r.store.ListDocumentVersions(ctx, docID)
	if err != nil {
		return err
	}

	for _, version := range versions {
		provider, err := r.providers.Provide(version.StorageProvider)
		if err != nil {
			logrus.Errorf("recyclebin: unknown provider %s for version %s", version.StorageProvider, version.ID)
			continue
		}

		removed, err := provider.Delete(ctx, version.StoragePath)
		if err != nil {
			return err
		}
		if !removed {
			// immutable content stays behind, the metadata still goes
			logrus.Infof("recyclebin: content %s retained by provider %s", version.StoragePath, provider.Name())
		}
	}

	if err := r.store.DeleteDocumentVersions(ctx, docID); err != nil {
		return err
	}

	return r.store.DeleteShortcutsForDocument(ctx, docID)
}

// checkParent enforces restore placement: nil parent means the node was
// at root, a non nil but missing parent is an error.
func (r *RecycleBinService) checkParent(ctx context.Context, item *model.RecycleBinItem, snapshot map[string]any) error {
	switch item.NodeType {
	case model.NodeTypeCabinet:
		return nil

	case model.NodeTypeFolder:
		cabinetID, err := uuid.Parse(snapshotString(snapshot, "cabinetId"))
		if err != nil {
			return fmt.Errorf("%w: folder snapshot has no cabinet", ErrValidation)
		}
		if _, err := r.store.GetCabinet(ctx, cabinetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrphanedParent
			}
			return err
		}
		if item.OriginalParentID != nil {
			parentID, err := uuid.Parse(*item.OriginalParentID)
			if err != nil {
				return fmt.Errorf("%w: malformed parent id", ErrValidation)
			}
			if _, err := r.store.GetFolder(ctx, parentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrOrphanedParent
				}
				return err
			}
		}
		return nil

	case model.NodeTypeDocument:
		// documents always live in a folder
		if item.OriginalParentID == nil {
			return ErrOrphanedParent
		}
		folderID, err := uuid.Parse(*item.OriginalParentID)
		if err != nil {
			return fmt.Errorf("%w: malformed parent id", ErrValidation)
		}
		if _, err := r.store.GetFolder(ctx, folderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrphanedParent
			}
			return err
		}
		return nil
	}

	return fmt.Errorf("%w: unknown node type %s", ErrValidation, item.NodeType)
}

func (r *RecycleBinService) recreate(ctx context.Context, tx store.Store, item *model.RecycleBinItem, snapshot map[string]any) error {
	switch item.NodeType {
	case model.NodeTypeCabinet:
		return tx.CreateCabinet(ctx, &model.Cabinet{
			ID:          item.NodeID,
			Name:        item.NodeName,
			Description: snapshotString(snapshot, "description"),
			CreatedBy:   snapshotString(snapshot, "createdBy"),
		})

	case model.NodeTypeFolder:
		return tx.CreateFolder(ctx, &model.Folder{
			ID:        item.NodeID,
			CabinetID: snapshotString(snapshot, "cabinetId"),
			ParentID:  item.OriginalParentID,
			Name:      item.NodeName,
			Path:      item.OriginalPath,
			CreatedBy: snapshotString(snapshot, "createdBy"),
		})

	case model.NodeTypeDocument:
		var statusID *string
		if s := snapshotString(snapshot, "statusId"); s != "" {
			statusID = &s
		}
		return tx.CreateDocument(ctx, &model.Document{
			ID:              item.NodeID,
			FolderID:        *item.OriginalParentID,
			Title:           item.NodeName,
			FileName:        snapshotString(snapshot, "fileName"),
			ContentType:     snapshotString(snapshot, "contentType"),
			StoragePath:     snapshotString(snapshot, "storagePath"),
			StorageProvider: snapshotString(snapshot, "storageProvider"),
			RetentionHold:   snapshotBool(snapshot, "retentionHold"),
			StatusID:        statusID,
			Version:         snapshotInt(snapshot, "version"),
			CreatedBy:       snapshotString(snapshot, "createdBy"),
		})
	}

	return fmt.Errorf("%w: unknown node type %s", ErrValidation, item.NodeType)
}

func (r *RecycleBinService) encodeSnapshot(snapshot map[string]any) ([]byte, error) {
	if snapshot == nil {
		snapshot = map[string]any{}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	return r.codec.Encode(data)
}

func (r *RecycleBinService) decodeSnapshot(metadata []byte) (map[string]any, error) {
	data, err := r.codec.Decode(metadata)
	if err != nil {
		return nil, err
	}

	snapshot := map[string]any{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func snapshotString(snapshot map[string]any, key string) string {
	if v, ok := snapshot[key].(string); ok {
		return v
	}
	return ""
}

func snapshotBool(snapshot map[string]any, key string) bool {
	if v, ok := snapshot[key].(bool); ok {
		return v
	}
	return false
}

func snapshotInt(snapshot map[string]any, key string) int64 {
	// JSON numbers decode as float64
	if v, ok := snapshot[key].(float64); ok {
		return int64(v)
	}
	return 0
}
