package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emrgen/cabinet/internal/compress"
	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/storage"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the transfer view of a document.
type Document struct {
	ID            string     `json:"id"`
	FolderID      string     `json:"folderId"`
	Title         string     `json:"title"`
	FileName      string     `json:"fileName,omitempty"`
	ContentType   string     `json:"contentType,omitempty"`
	RetentionHold bool       `json:"retentionHold"`
	StatusID      *string    `json:"statusId,omitempty"`
	Version       int64      `json:"version"`
	CheckedOutBy  *string    `json:"checkedOutBy,omitempty"`
	CheckedOutAt  *time.Time `json:"checkedOutAt,omitempty"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func documentView(doc *model.Document) *Document {
	return &Document{
		ID:            doc.ID,
		FolderID:      doc.FolderID,
		Title:         doc.Title,
		FileName:      doc.FileName,
		ContentType:   doc.ContentType,
		RetentionHold: doc.RetentionHold,
		StatusID:      doc.StatusID,
		Version:       doc.Version,
		CheckedOutBy:  doc.CheckedOutBy,
		CheckedOutAt:  doc.CheckedOutAt,
		CreatedBy:     doc.CreatedBy,
		CreatedAt:     doc.CreatedAt,
	}
}

// Version is the transfer view of a document version.
type Version struct {
	ID        string    `json:"id"`
	Number    int64     `json:"number"`
	Size      int64     `json:"size"`
	Comment   string    `json:"comment,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateDocumentInput carries the fields for a new document.
type CreateDocumentInput struct {
	FolderID      uuid.UUID
	Title         string
	FileName      string
	ContentType   string
	RetentionHold bool
	StatusID      *string
	Content       io.Reader
	Actor         string
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store store.Store, providers *storage.Registry, codec compress.Compress, bin *RecycleBinService, audit Sink) *DocumentService {
	return &DocumentService{
		store:     store,
		providers: providers,
		codec:     codec,
		bin:       bin,
		audit:     audit,
	}
}

// DocumentService manages document metadata, checkout and versioned
// content. Content bytes only flow through the storage providers;
// retention hold documents are routed to the immutable one.
type DocumentService struct {
	store     store.Store
	providers *storage.Registry
	codec     compress.Compress
	bin       *RecycleBinService
	audit     Sink
}

// contentPath builds the relative path a version's bytes live under.
func contentPath(cabinetID, docID string, number int64, fileName string) string {
	if fileName == "" {
		fileName = "content"
	}
	return fmt.Sprintf("%s/%s/v%d/%s", cabinetID, docID, number, fileName)
}

// CreateDocument creates a document and stores version 1 of its content.
func (d *DocumentService) CreateDocument(ctx context.Context, in CreateDocumentInput) (*Document, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: document title is required", ErrValidation)
	}
	if in.Content == nil {
		return nil, fmt.Errorf("%w: document content is required", ErrValidation)
	}

	folder, err := d.store.GetFolder(ctx, in.FolderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	doc := &model.Document{
		ID:            uuid.New().String(),
		FolderID:      folder.ID,
		Title:         in.Title,
		FileName:      in.FileName,
		ContentType:   in.ContentType,
		RetentionHold: in.RetentionHold,
		StatusID:      in.StatusID,
		Version:       1,
		CreatedBy:     in.Actor,
	}

	version, err := d.writeVersion(ctx, folder.CabinetID, doc, 1, in.Content, "initial version", in.Actor)
	if err != nil {
		return nil, err
	}

	doc.StoragePath = version.StoragePath
	doc.StorageProvider = version.StorageProvider

	err = d.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateDocument(ctx, doc); err != nil {
			return err
		}
		return tx.CreateDocumentVersion(ctx, version)
	})
	if err != nil {
		return nil, err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.create", doc.Title, in.Actor)

	return documentView(doc), nil
}

func (d *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return documentView(doc), nil
}

func (d *DocumentService) ListDocuments(ctx context.Context, folderID uuid.UUID) ([]*Document, error) {
	docs, err := d.store.ListDocuments(ctx, folderID)
	if err != nil {
		return nil, err
	}

	result := make([]*Document, 0, len(docs))
	for _, doc := range docs {
		result = append(result, documentView(doc))
	}

	return result, nil
}

// UpdateDocument changes title and workflow status.
func (d *DocumentService) UpdateDocument(ctx context.Context, id uuid.UUID, title string, statusID *string, actor string) (*Document, error) {
	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	if title != "" {
		doc.Title = title
	}
	doc.StatusID = statusID

	if err := d.store.UpdateDocument(ctx, doc); err != nil {
		return nil, err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.update", doc.Title, actor)

	return documentView(doc), nil
}

// DeleteDocument tombstones a document and removes the live row. Content
// stays behind the provider until the tombstone is purged.
func (d *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID, actor string) error {
	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	originalPath := doc.Title
	folderID, err := uuid.Parse(doc.FolderID)
	if err == nil {
		if folder, err := d.store.GetFolder(ctx, folderID); err == nil {
			originalPath = folder.Path + "/" + doc.Title
		}
	}

	folderRef := doc.FolderID
	if _, err := d.bin.SoftDelete(ctx, model.NodeTypeDocument, id, doc.Title,
		originalPath, &folderRef, actor, documentSnapshot(doc)); err != nil {
		return err
	}

	if err := d.store.DeleteDocument(ctx, id); err != nil {
		return err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.delete", doc.Title, actor)

	return nil
}

// Checkout marks the document as exclusively editable by actor.
func (d *DocumentService) Checkout(ctx context.Context, id uuid.UUID, actor string) (*Document, error) {
	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	if doc.CheckedOutBy != nil && *doc.CheckedOutBy != actor {
		return nil, ErrCheckedOut
	}

	now := time.Now()
	doc.CheckedOutBy = &actor
	doc.CheckedOutAt = &now

	if err := d.store.UpdateDocument(ctx, doc); err != nil {
		return nil, err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.checkout", doc.Title, actor)

	return documentView(doc), nil
}

// CancelCheckout releases a checkout without creating a version. Only
// the holder can release.
func (d *DocumentService) CancelCheckout(ctx context.Context, id uuid.UUID, actor string) error {
	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	if doc.CheckedOutBy == nil || *doc.CheckedOutBy != actor {
		return ErrCheckedOut
	}

	doc.CheckedOutBy = nil
	doc.CheckedOutAt = nil

	if err := d.store.UpdateDocument(ctx, doc); err != nil {
		return err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.checkout.cancel", doc.Title, actor)

	return nil
}

// CheckIn stores new content as the next version and releases the
// checkout. The caller must hold the checkout.
func (d *DocumentService) CheckIn(ctx context.Context, id uuid.UUID, content io.Reader, comment, actor string) (*Document, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	doc, err := d.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	if doc.CheckedOutBy == nil || *doc.CheckedOutBy != actor {
		return nil, ErrCheckedOut
	}

	folderID, err := uuid.Parse(doc.FolderID)
	if err != nil {
		return nil, err
	}
	folder, err := d.store.GetFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	next := doc.Version + 1
	version, err := d.writeVersion(ctx, folder.CabinetID, doc, next, content, comment, actor)
	if err != nil {
		return nil, err
	}

	doc.Version = next
	doc.StoragePath = version.StoragePath
	doc.StorageProvider = version.StorageProvider
	doc.CheckedOutBy = nil
	doc.CheckedOutAt = nil

	err = d.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.CreateDocumentVersion(ctx, version); err != nil {
			return err
		}
		return tx.UpdateDocument(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	d.audit.Record(ctx, model.NodeTypeDocument, doc.ID, "document.checkin",
		fmt.Sprintf("%s v%d", doc.Title, next), actor)

	return documentView(doc), nil
}

// ListVersions returns the versions of a document, newest first.
func (d *DocumentService) ListVersions(ctx context.Context, id uuid.UUID) ([]*Version, error) {
	versions, err := d.store.ListDocumentVersions(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]*Version, 0, len(versions))
	for _, version := range versions {
		result = append(result, &Version{
			ID:        version.ID,
			Number:    version.Number,
			Size:      version.Size,
			Comment:   version.Comment,
			CreatedBy: version.CreatedBy,
			CreatedAt: version.CreatedAt,
		})
	}

	return result, nil
}

// GetVersionContent streams the decoded bytes of one version.
func (d *DocumentService) GetVersionContent(ctx context.Context, id uuid.UUID, number int64) (io.ReadCloser, error) {
	version, err := d.store.GetDocumentVersion(ctx, id, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	provider, err := d.providers.Provide(version.StorageProvider)
	if err != nil {
		return nil, err
	}

	rc, err := provider.Get(ctx, version.StoragePath)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, ErrNotFound
	}
	defer rc.Close()

	encoded, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	data := encoded
	if version.Compression != "" && version.Compression != "none" {
		data, err = d.codec.Decode(encoded)
		if err != nil {
			return nil, err
		}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// writeVersion encodes content and stores it through the routed provider.
func (d *DocumentService) writeVersion(ctx context.Context, cabinetID string, doc *model.Document, number int64, content io.Reader, comment, actor string) (*model.DocumentVersion, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	encoded, err := d.codec.Encode(raw)
	if err != nil {
		return nil, err
	}

	provider := d.providers.Route(doc.RetentionHold)
	relPath := contentPath(cabinetID, doc.ID, number, doc.FileName)

	if _, err := provider.Save(ctx, bytes.NewReader(encoded), relPath); err != nil {
		return nil, err
	}

	return &model.DocumentVersion{
		ID:              uuid.New().String(),
		DocumentID:      doc.ID,
		Number:          number,
		StoragePath:     relPath,
		StorageProvider: provider.Name(),
		Size:            int64(len(raw)),
		Comment:         comment,
		Compression:     d.codec.Name(),
		CreatedBy:       actor,
	}, nil
}
