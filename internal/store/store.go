package store

import (
	"context"
	"time"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/google/uuid"
)

type Store interface {
	CabinetStore
	FolderStore
	DocumentStore
	LinkStore
	ShortcutStore
	RecycleBinStore
	ActivityStore
	WorkflowStatusStore
	UserStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type CabinetStore interface {
	// CreateCabinet creates a new cabinet.
	CreateCabinet(ctx context.Context, cabinet *model.Cabinet) error
	// GetCabinet retrieves a cabinet by ID.
	GetCabinet(ctx context.Context, id uuid.UUID) (*model.Cabinet, error)
	// ListCabinets retrieves all cabinets.
	ListCabinets(ctx context.Context) ([]*model.Cabinet, error)
	// UpdateCabinet updates a cabinet.
	UpdateCabinet(ctx context.Context, cabinet *model.Cabinet) error
	// DeleteCabinet removes a cabinet row. The caller tombstones first.
	DeleteCabinet(ctx context.Context, id uuid.UUID) error
	// CountCabinets returns the number of cabinets.
	CountCabinets(ctx context.Context) (int64, error)
}

type FolderStore interface {
	// CreateFolder creates a new folder.
	CreateFolder(ctx context.Context, folder *model.Folder) error
	// GetFolder retrieves a folder by ID.
	GetFolder(ctx context.Context, id uuid.UUID) (*model.Folder, error)
	// ListFolders retrieves all folders in a cabinet.
	ListFolders(ctx context.Context, cabinetID uuid.UUID) ([]*model.Folder, error)
	// ListChildFolders retrieves the folders directly under a parent folder.
	ListChildFolders(ctx context.Context, parentID uuid.UUID) ([]*model.Folder, error)
	// UpdateFolder updates a folder.
	UpdateFolder(ctx context.Context, folder *model.Folder) error
	// DeleteFolder removes a folder row. The caller tombstones first.
	DeleteFolder(ctx context.Context, id uuid.UUID) error
	// CountFolders returns the number of folders.
	CountFolders(ctx context.Context) (int64, error)
}

type DocumentStore interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *model.Document) error
	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id uuid.UUID) (*model.Document, error)
	// ListDocuments retrieves the documents in a folder.
	ListDocuments(ctx context.Context, folderID uuid.UUID) ([]*model.Document, error)
	// UpdateDocument updates a document.
	UpdateDocument(ctx context.Context, doc *model.Document) error
	// DeleteDocument removes a document row. The caller tombstones first.
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	// CountDocuments returns the number of documents.
	CountDocuments(ctx context.Context) (int64, error)
	// CountDocumentsWithStatus returns the number of documents carrying a workflow status.
	CountDocumentsWithStatus(ctx context.Context, statusID uuid.UUID) (int64, error)
	// CreateDocumentVersion creates a new document version.
	CreateDocumentVersion(ctx context.Context, version *model.DocumentVersion) error
	// ListDocumentVersions retrieves the versions of a document, newest first.
	ListDocumentVersions(ctx context.Context, docID uuid.UUID) ([]*model.DocumentVersion, error)
	// GetDocumentVersion retrieves a document version by document ID and number.
	GetDocumentVersion(ctx context.Context, docID uuid.UUID, number int64) (*model.DocumentVersion, error)
	// DeleteDocumentVersions removes every version row of a document (purge only).
	DeleteDocumentVersions(ctx context.Context, docID uuid.UUID) error
}

type LinkStore interface {
	// CreateLink creates a directed edge. The unique index on the
	// (source, target) pair is the duplicate authority.
	CreateLink(ctx context.Context, link *model.DocumentLink) error
	// GetLink retrieves a link by ID.
	GetLink(ctx context.Context, id uuid.UUID) (*model.DocumentLink, error)
	// ListOutgoingLinks retrieves the edges where the document is the source.
	ListOutgoingLinks(ctx context.Context, docID uuid.UUID) ([]*model.DocumentLink, error)
	// ListIncomingLinks retrieves the edges where the document is the target.
	ListIncomingLinks(ctx context.Context, docID uuid.UUID) ([]*model.DocumentLink, error)
	// UpdateLink updates a link.
	UpdateLink(ctx context.Context, link *model.DocumentLink) error
	// DeleteLink removes an edge permanently.
	DeleteLink(ctx context.Context, id uuid.UUID) error
	// CountOutgoingLinks counts the edges where the document is the source.
	CountOutgoingLinks(ctx context.Context, docID uuid.UUID) (int64, error)
}

type ShortcutStore interface {
	// CreateShortcut creates a shortcut placement. The unique index on the
	// (document, folder) pair is the duplicate authority.
	CreateShortcut(ctx context.Context, shortcut *model.DocumentShortcut) error
	// GetShortcut retrieves a shortcut by ID.
	GetShortcut(ctx context.Context, id uuid.UUID) (*model.DocumentShortcut, error)
	// ListShortcutsForDocument retrieves the placements of a document in insertion order.
	ListShortcutsForDocument(ctx context.Context, docID uuid.UUID) ([]*model.DocumentShortcut, error)
	// DeleteShortcut removes a shortcut.
	DeleteShortcut(ctx context.Context, id uuid.UUID) error
	// DeleteShortcutsForDocument removes every placement of a document.
	DeleteShortcutsForDocument(ctx context.Context, docID uuid.UUID) error
}

type RecycleBinStore interface {
	// CreateRecycleBinItem writes a tombstone.
	CreateRecycleBinItem(ctx context.Context, item *model.RecycleBinItem) error
	// GetRecycleBinItem retrieves a tombstone by ID.
	GetRecycleBinItem(ctx context.Context, id uuid.UUID) (*model.RecycleBinItem, error)
	// ListRecycleBinItems retrieves all tombstones, newest first.
	ListRecycleBinItems(ctx context.Context) ([]*model.RecycleBinItem, error)
	// ListExpiredRecycleBinItems retrieves tombstones whose retention window ended before the cutoff.
	ListExpiredRecycleBinItems(ctx context.Context, cutoff time.Time) ([]*model.RecycleBinItem, error)
	// DeleteRecycleBinItem removes a tombstone (restore or purge).
	DeleteRecycleBinItem(ctx context.Context, id uuid.UUID) error
	// CountRecycleBinItems returns the number of tombstones.
	CountRecycleBinItems(ctx context.Context) (int64, error)
}

type ActivityStore interface {
	// CreateActivity appends an audit entry. There is no update or delete.
	CreateActivity(ctx context.Context, entry *model.ActivityLog) error
	// ListActivities retrieves recent entries, newest first.
	ListActivities(ctx context.Context, limit int) ([]*model.ActivityLog, error)
	// ListNodeActivities retrieves the entries recorded against a node, newest first.
	ListNodeActivities(ctx context.Context, nodeType model.NodeType, nodeID uuid.UUID) ([]*model.ActivityLog, error)
}

type WorkflowStatusStore interface {
	// CreateWorkflowStatus creates a new workflow status.
	CreateWorkflowStatus(ctx context.Context, status *model.WorkflowStatus) error
	// GetWorkflowStatus retrieves a workflow status by ID.
	GetWorkflowStatus(ctx context.Context, id uuid.UUID) (*model.WorkflowStatus, error)
	// ListWorkflowStatuses retrieves all statuses ordered by sort order.
	ListWorkflowStatuses(ctx context.Context) ([]*model.WorkflowStatus, error)
	// UpdateWorkflowStatus updates a workflow status.
	UpdateWorkflowStatus(ctx context.Context, status *model.WorkflowStatus) error
	// DeleteWorkflowStatus removes a workflow status.
	DeleteWorkflowStatus(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *model.User) error
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
