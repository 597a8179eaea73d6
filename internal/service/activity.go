package service

import (
	"context"
	"time"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sink receives one audit entry per state changing operation. Record is
// fire and forget from the caller's perspective: a failed write never
// rolls back the primary mutation.
type Sink interface {
	Record(ctx context.Context, nodeType model.NodeType, nodeID, action, details, actor string)
}

var _ Sink = (*StoreSink)(nil)

// StoreSink appends entries to the activity_log table. Failures are
// surfaced through the log, never returned.
type StoreSink struct {
	store store.ActivityStore
}

func NewStoreSink(store store.ActivityStore) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Record(ctx context.Context, nodeType model.NodeType, nodeID, action, details, actor string) {
	entry := &model.ActivityLog{
		ID:        uuid.New().String(),
		NodeType:  nodeType,
		NodeID:    nodeID,
		Action:    action,
		Details:   details,
		UserID:    actor,
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateActivity(ctx, entry); err != nil {
		logrus.Errorf("activity: failed to record %s on %s %s: %v", action, nodeType, nodeID, err)
	}
}

// Activity is the transfer view of an audit entry.
type Activity struct {
	ID        string         `json:"id"`
	NodeType  model.NodeType `json:"nodeType"`
	NodeID    string         `json:"nodeId"`
	Action    string         `json:"action"`
	Details   string         `json:"details,omitempty"`
	UserID    string         `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
}

func activityView(entry *model.ActivityLog) *Activity {
	return &Activity{
		ID:        entry.ID,
		NodeType:  entry.NodeType,
		NodeID:    entry.NodeID,
		Action:    entry.Action,
		Details:   entry.Details,
		UserID:    entry.UserID,
		CreatedAt: entry.CreatedAt,
	}
}

// ActivityService reads the audit trail.
type ActivityService struct {
	store store.Store
}

func NewActivityService(store store.Store) *ActivityService {
	return &ActivityService{store: store}
}

// ListRecent returns the newest entries across all nodes.
func (a *ActivityService) ListRecent(ctx context.Context, limit int) ([]*Activity, error) {
	if limit <= 0 {
		limit = 50
	}

	entries, err := a.store.ListActivities(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*Activity, 0, len(entries))
	for _, entry := range entries {
		result = append(result, activityView(entry))
	}

	return result, nil
}

// ListForNode returns the entries recorded against one node.
func (a *ActivityService) ListForNode(ctx context.Context, nodeType model.NodeType, nodeID uuid.UUID) ([]*Activity, error) {
	entries, err := a.store.ListNodeActivities(ctx, nodeType, nodeID)
	if err != nil {
		return nil, err
	}

	result := make([]*Activity, 0, len(entries))
	for _, entry := range entries {
		result = append(result, activityView(entry))
	}

	return result, nil
}
