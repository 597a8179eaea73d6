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

// Link is the transfer view of a directed edge between two documents.
type Link struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"sourceDocumentId"`
	TargetID    string    `json:"targetDocumentId"`
	LinkType    string    `json:"linkType"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func linkView(link *model.DocumentLink) *Link {
	return &Link{
		ID:          link.ID,
		SourceID:    link.SourceID,
		TargetID:    link.TargetID,
		LinkType:    link.LinkType,
		Description: link.Description,
		CreatedBy:   link.CreatedBy,
		CreatedAt:   link.CreatedAt,
	}
}

// NewLinkService creates a new LinkService.
func NewLinkService(store store.Store, audit Sink) *LinkService {
	return &LinkService{
		store: store,
		audit: audit,
	}
}

// LinkService manages the directed, typed link graph between documents.
// Edges are directional: A->B and B->A are independent.
type LinkService struct {
	store store.Store
	audit Sink
}

// AddLink creates an edge from source to target. The (source, target)
// unique index is the duplicate authority, so concurrent identical
// requests cannot both win.
func (l *LinkService) AddLink(ctx context.Context, sourceID, targetID uuid.UUID, linkType, description, actor string) (*Link, error) {
	if linkType == "" {
		return nil, fmt.Errorf("%w: link type is required", ErrValidation)
	}

	if sourceID == targetID {
		return nil, ErrSelfLink
	}

	link := &model.DocumentLink{
		ID:          uuid.New().String(),
		SourceID:    sourceID.String(),
		TargetID:    targetID.String(),
		LinkType:    linkType,
		Description: description,
		CreatedBy:   actor,
	}

	if err := l.store.CreateLink(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLink
		}
		return nil, err
	}

	l.audit.Record(ctx, model.NodeTypeDocument, link.SourceID, "link.create",
		fmt.Sprintf("linked to %s (%s)", link.TargetID, link.LinkType), actor)

	return linkView(link), nil
}

// GetOutgoingLinks returns the edges where the document is the source.
func (l *LinkService) GetOutgoingLinks(ctx context.Context, docID uuid.UUID) ([]*Link, error) {
	links, err := l.store.ListOutgoingLinks(ctx, docID)
	if err != nil {
		return nil, err
	}

	result := make([]*Link, 0, len(links))
	for _, link := range links {
		result = append(result, linkView(link))
	}

	return result, nil
}

// GetIncomingLinks returns the edges where the document is the target.
func (l *LinkService) GetIncomingLinks(ctx context.Context, docID uuid.UUID) ([]*Link, error) {
	links, err := l.store.ListIncomingLinks(ctx, docID)
	if err != nil {
		return nil, err
	}

	result := make([]*Link, 0, len(links))
	for _, link := range links {
		result = append(result, linkView(link))
	}

	return result, nil
}

// UpdateLink changes the type and description of an edge. Duplication and
// self link are creation time invariants and are not re-checked here.
func (l *LinkService) UpdateLink(ctx context.Context, id uuid.UUID, linkType, description string) (*Link, error) {
	link, err := l.store.GetLink(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if linkType != "" {
		link.LinkType = linkType
	}
	link.Description = description

	if err := l.store.UpdateLink(ctx, link); err != nil {
		return nil, err
	}

	l.audit.Record(ctx, model.NodeTypeDocument, link.SourceID, "link.update",
		fmt.Sprintf("link %s retyped to %s", link.ID, link.LinkType), link.CreatedBy)

	return linkView(link), nil
}

// RemoveLink hard deletes an edge. The audit entry is tagged to the
// source document with the edge's original creator as the acting user, so
// provenance survives the edge itself.
func (l *LinkService) RemoveLink(ctx context.Context, id uuid.UUID) error {
	link, err := l.store.GetLink(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := l.store.DeleteLink(ctx, id); err != nil {
		return err
	}

	l.audit.Record(ctx, model.NodeTypeDocument, link.SourceID, "link.remove",
		fmt.Sprintf("unlinked from %s", link.TargetID), link.CreatedBy)

	return nil
}

// CountLinks counts outgoing edges only. Counting is direction aware:
// edges pointing at the document do not contribute.
func (l *LinkService) CountLinks(ctx context.Context, docID uuid.UUID) (int64, error) {
	return l.store.CountOutgoingLinks(ctx, docID)
}
