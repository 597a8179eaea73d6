package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowStatusService_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	statuses := NewWorkflowStatusService(f.store)

	status, err := statuses.CreateStatus(ctx, "Draft", "#9ca3af", 1)
	require.NoError(t, err)

	fetched, err := statuses.GetStatus(ctx, mustID(t, status.ID))
	require.NoError(t, err)
	assert.Equal(t, "Draft", fetched.Name)
	assert.Equal(t, "#9ca3af", fetched.Color)

	updated, err := statuses.UpdateStatus(ctx, mustID(t, status.ID), "Published", "#22c55e", 2)
	require.NoError(t, err)
	assert.Equal(t, "Published", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)

	all, err := statuses.ListStatuses(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	require.NoError(t, statuses.DeleteStatus(ctx, mustID(t, status.ID)))
	_, err = statuses.GetStatus(ctx, mustID(t, status.ID))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = statuses.CreateStatus(ctx, "", "", 0)
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, statuses.DeleteStatus(ctx, uuid.New()), ErrNotFound)
}

func TestWorkflowStatusService_DeleteStatusInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	statuses := NewWorkflowStatusService(f.store)

	status, err := statuses.CreateStatus(ctx, "Approved", "#22c55e", 1)
	require.NoError(t, err)

	cabinet := f.createCabinet(t, "legal")
	folder := f.createFolder(t, cabinet.ID, nil, "contracts")
	doc := f.createDocument(t, folder.ID, "msa")

	_, err = f.docs.UpdateDocument(ctx, mustID(t, doc.ID), "", &status.ID, "alice")
	require.NoError(t, err)

	assert.ErrorIs(t, statuses.DeleteStatus(ctx, mustID(t, status.ID)), ErrStatusInUse)

	// detaching the document frees the status
	_, err = f.docs.UpdateDocument(ctx, mustID(t, doc.ID), "", nil, "alice")
	require.NoError(t, err)
	assert.NoError(t, statuses.DeleteStatus(ctx, mustID(t, status.ID)))
}
