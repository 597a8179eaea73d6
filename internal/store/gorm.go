package store

import (
	"context"
	"time"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateCabinet(ctx context.Context, cabinet *model.Cabinet) error {
	return g.db.WithContext(ctx).Create(cabinet).Error
}

func (g *GormStore) GetCabinet(ctx context.Context, id uuid.UUID) (*model.Cabinet, error) {
	var cabinet model.Cabinet
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&cabinet).Error
	if err != nil {
		return nil, err
	}
	return &cabinet, nil
}

func (g *GormStore) ListCabinets(ctx context.Context) ([]*model.Cabinet, error) {
	var cabinets []*model.Cabinet
	err := g.db.WithContext(ctx).Order("created_at").Find(&cabinets).Error
	return cabinets, err
}

func (g *GormStore) UpdateCabinet(ctx context.Context, cabinet *model.Cabinet) error {
	return g.db.WithContext(ctx).Save(cabinet).Error
}

func (g *GormStore) DeleteCabinet(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.Cabinet{}).Error
}

func (g *GormStore) CountCabinets(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Cabinet{}).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateFolder(ctx context.Context, folder *model.Folder) error {
	return g.db.WithContext(ctx).Create(folder).Error
}

func (g *GormStore) GetFolder(ctx context.Context, id uuid.UUID) (*model.Folder, error) {
	var folder model.Folder
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&folder).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (g *GormStore) ListFolders(ctx context.Context, cabinetID uuid.UUID) ([]*model.Folder, error) {
	var folders []*model.Folder
	err := g.db.WithContext(ctx).Where("cabinet_id = ?", cabinetID.String()).Order("path").Find(&folders).Error
	return folders, err
}

func (g *GormStore) ListChildFolders(ctx context.Context, parentID uuid.UUID) ([]*model.Folder, error) {
	var folders []*model.Folder
	err := g.db.WithContext(ctx).Where("parent_id = ?", parentID.String()).Order("name").Find(&folders).Error
	return folders, err
}

func (g *GormStore) UpdateFolder(ctx context.Context, folder *model.Folder) error {
	return g.db.WithContext(ctx).Save(folder).Error
}

func (g *GormStore) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.Folder{}).Error
}

func (g *GormStore) CountFolders(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Folder{}).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Create(doc).Error
}

func (g *GormStore) GetDocument(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (g *GormStore) ListDocuments(ctx context.Context, folderID uuid.UUID) ([]*model.Document, error) {
	var docs []*model.Document
	err := g.db.WithContext(ctx).Where("folder_id = ?", folderID.String()).Order("title").Find(&docs).Error
	return docs, err
}

func (g *GormStore) UpdateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Save(doc).Error
}

func (g *GormStore) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.Document{}).Error
}

func (g *GormStore) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Document{}).Count(&count).Error
	return count, err
}

func (g *GormStore) CountDocumentsWithStatus(ctx context.Context, statusID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.Document{}).Where("status_id = ?", statusID.String()).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateDocumentVersion(ctx context.Context, version *model.DocumentVersion) error {
	return g.db.WithContext(ctx).Create(version).Error
}

func (g *GormStore) ListDocumentVersions(ctx context.Context, docID uuid.UUID) ([]*model.DocumentVersion, error) {
	var versions []*model.DocumentVersion
	err := g.db.WithContext(ctx).Where("document_id = ?", docID.String()).Order("number desc").Find(&versions).Error
	return versions, err
}

func (g *GormStore) GetDocumentVersion(ctx context.Context, docID uuid.UUID, number int64) (*model.DocumentVersion, error) {
	var version model.DocumentVersion
	err := g.db.WithContext(ctx).Where("document_id = ? AND number = ?", docID.String(), number).First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (g *GormStore) DeleteDocumentVersions(ctx context.Context, docID uuid.UUID) error {
	return g.db.WithContext(ctx).Where("document_id = ?", docID.String()).Delete(&model.DocumentVersion{}).Error
}

func (g *GormStore) CreateLink(ctx context.Context, link *model.DocumentLink) error {
	return g.db.WithContext(ctx).Create(link).Error
}

func (g *GormStore) GetLink(ctx context.Context, id uuid.UUID) (*model.DocumentLink, error) {
	var link model.DocumentLink
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g *GormStore) ListOutgoingLinks(ctx context.Context, docID uuid.UUID) ([]*model.DocumentLink, error) {
	var links []*model.DocumentLink
	err := g.db.WithContext(ctx).Where("source_id = ?", docID.String()).Order("created_at").Find(&links).Error
	return links, err
}

func (g *GormStore) ListIncomingLinks(ctx context.Context, docID uuid.UUID) ([]*model.DocumentLink, error) {
	var links []*model.DocumentLink
	err := g.db.WithContext(ctx).Where("target_id = ?", docID.String()).Order("created_at").Find(&links).Error
	return links, err
}

func (g *GormStore) UpdateLink(ctx context.Context, link *model.DocumentLink) error {
	return g.db.WithContext(ctx).Save(link).Error
}

func (g *GormStore) DeleteLink(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.DocumentLink{}).Error
}

func (g *GormStore) CountOutgoingLinks(ctx context.Context, docID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.DocumentLink{}).Where("source_id = ?", docID.String()).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateShortcut(ctx context.Context, shortcut *model.DocumentShortcut) error {
	return g.db.WithContext(ctx).Create(shortcut).Error
}

func (g *GormStore) GetShortcut(ctx context.Context, id uuid.UUID) (*model.DocumentShortcut, error) {
	var shortcut model.DocumentShortcut
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&shortcut).Error
	if err != nil {
		return nil, err
	}
	return &shortcut, nil
}

func (g *GormStore) ListShortcutsForDocument(ctx context.Context, docID uuid.UUID) ([]*model.DocumentShortcut, error) {
	var shortcuts []*model.DocumentShortcut
	err := g.db.WithContext(ctx).Where("document_id = ?", docID.String()).Order("created_at").Find(&shortcuts).Error
	return shortcuts, err
}

func (g *GormStore) DeleteShortcut(ctx context.Context, id uuid.UUID) error {
	tx := g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.DocumentShortcut{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormStore) DeleteShortcutsForDocument(ctx context.Context, docID uuid.UUID) error {
	return g.db.WithContext(ctx).Where("document_id = ?", docID.String()).Delete(&model.DocumentShortcut{}).Error
}

func (g *GormStore) CreateRecycleBinItem(ctx context.Context, item *model.RecycleBinItem) error {
	return g.db.WithContext(ctx).Create(item).Error
}

func (g *GormStore) GetRecycleBinItem(ctx context.Context, id uuid.UUID) (*model.RecycleBinItem, error) {
	var item model.RecycleBinItem
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (g *GormStore) ListRecycleBinItems(ctx context.Context) ([]*model.RecycleBinItem, error) {
	var items []*model.RecycleBinItem
	err := g.db.WithContext(ctx).Order("deleted_at desc").Find(&items).Error
	return items, err
}

func (g *GormStore) ListExpiredRecycleBinItems(ctx context.Context, cutoff time.Time) ([]*model.RecycleBinItem, error) {
	var items []*model.RecycleBinItem
	err := g.db.WithContext(ctx).Where("expires_at < ?", cutoff).Find(&items).Error
	return items, err
}

func (g *GormStore) DeleteRecycleBinItem(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.RecycleBinItem{}).Error
}

func (g *GormStore) CountRecycleBinItems(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.RecycleBinItem{}).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *GormStore) ListActivities(ctx context.Context, limit int) ([]*model.ActivityLog, error) {
	var entries []*model.ActivityLog
	err := g.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}

func (g *GormStore) ListNodeActivities(ctx context.Context, nodeType model.NodeType, nodeID uuid.UUID) ([]*model.ActivityLog, error) {
	var entries []*model.ActivityLog
	err := g.db.WithContext(ctx).
		Where("node_type = ? AND node_id = ?", nodeType, nodeID.String()).
		Order("created_at desc").Find(&entries).Error
	return entries, err
}

func (g *GormStore) CreateWorkflowStatus(ctx context.Context, status *model.WorkflowStatus) error {
	return g.db.WithContext(ctx).Create(status).Error
}

func (g *GormStore) GetWorkflowStatus(ctx context.Context, id uuid.UUID) (*model.WorkflowStatus, error) {
	var status model.WorkflowStatus
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (g *GormStore) ListWorkflowStatuses(ctx context.Context) ([]*model.WorkflowStatus, error) {
	var statuses []*model.WorkflowStatus
	err := g.db.WithContext(ctx).Order("sort_order").Find(&statuses).Error
	return statuses, err
}

func (g *GormStore) UpdateWorkflowStatus(ctx context.Context, status *model.WorkflowStatus) error {
	return g.db.WithContext(ctx).Save(status).Error
}

func (g *GormStore) DeleteWorkflowStatus(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.WorkflowStatus{}).Error
}

func (g *GormStore) CreateUser(ctx context.Context, user *model.User) error {
	return g.db.WithContext(ctx).Create(user).Error
}

func (g *GormStore) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := g.db.WithContext(ctx).Where("id = ?", id.String()).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *GormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
