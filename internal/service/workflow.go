package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowStatus is the transfer view of a workflow status.
type WorkflowStatus struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

func workflowStatusView(status *model.WorkflowStatus) *WorkflowStatus {
	return &WorkflowStatus{
		ID:        status.ID,
		Name:      status.Name,
		Color:     status.Color,
		SortOrder: status.SortOrder,
	}
}

// NewWorkflowStatusService creates a new WorkflowStatusService.
func NewWorkflowStatusService(store store.Store) *WorkflowStatusService {
	return &WorkflowStatusService{store: store}
}

type WorkflowStatusService struct {
	store store.Store
}

func (w *WorkflowStatusService) CreateStatus(ctx context.Context, name, color string, sortOrder int) (*WorkflowStatus, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: status name is required", ErrValidation)
	}

	status := &model.WorkflowStatus{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		SortOrder: sortOrder,
	}

	if err := w.store.CreateWorkflowStatus(ctx, status); err != nil {
		return nil, err
	}

	return workflowStatusView(status), nil
}

func (w *WorkflowStatusService) GetStatus(ctx context.Context, id uuid.UUID) (*WorkflowStatus, error) {
	status, err := w.store.GetWorkflowStatus(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return workflowStatusView(status), nil
}

func (w *WorkflowStatusService) ListStatuses(ctx context.Context) ([]*WorkflowStatus, error) {
	statuses, err := w.store.ListWorkflowStatuses(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*WorkflowStatus, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, workflowStatusView(status))
	}

	return result, nil
}

func (w *WorkflowStatusService) UpdateStatus(ctx context.Context, id uuid.UUID, name, color string, sortOrder int) (*WorkflowStatus, error) {
	status, err := w.store.GetWorkflowStatus(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if name != "" {
		status.Name = name
	}
	status.Color = color
	status.SortOrder = sortOrder

	if err := w.store.UpdateWorkflowStatus(ctx, status); err != nil {
		return nil, err
	}

	return workflowStatusView(status), nil
}

// DeleteStatus removes a status that no document carries.
func (w *WorkflowStatusService) DeleteStatus(ctx context.Context, id uuid.UUID) error {
	if _, err := w.store.GetWorkflowStatus(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := w.store.CountDocumentsWithStatus(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}

	return w.store.DeleteWorkflowStatus(ctx, id)
}
