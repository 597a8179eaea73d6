package service

import (
	"context"
	"testing"

	"github.com/emrgen/cabinet/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkService_AddLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()

	link, err := f.links.AddLink(ctx, a, b, "References", "see also", "alice")
	require.NoError(t, err)
	assert.Equal(t, a.String(), link.SourceID)
	assert.Equal(t, b.String(), link.TargetID)
	assert.Equal(t, "References", link.LinkType)
}

func TestLinkService_DuplicateDirectionFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()

	_, err := f.links.AddLink(ctx, a, b, "References", "", "alice")
	require.NoError(t, err)

	// identical direction loses at the unique index
	_, err = f.links.AddLink(ctx, a, b, "Supersedes", "", "bob")
	assert.ErrorIs(t, err, ErrDuplicateLink)

	// the reverse direction is an independent edge
	_, err = f.links.AddLink(ctx, b, a, "References", "", "bob")
	assert.NoError(t, err)
}

func TestLinkService_SelfLinkFails(t *testing.T) {
	f := newFixture(t)

	a := uuid.New()
	_, err := f.links.AddLink(context.Background(), a, a, "References", "", "alice")
	assert.ErrorIs(t, err, ErrSelfLink)
}

func TestLinkService_DirectionalQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()

	_, err := f.links.AddLink(ctx, a, b, "References", "see also", "alice")
	require.NoError(t, err)

	incoming, err := f.links.GetIncomingLinks(ctx, b)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, a.String(), incoming[0].SourceID)

	outgoing, err := f.links.GetOutgoingLinks(ctx, a)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, b.String(), outgoing[0].TargetID)

	outgoingB, err := f.links.GetOutgoingLinks(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, outgoingB)
}

func TestLinkService_UpdateLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	link, err := f.links.AddLink(ctx, uuid.New(), uuid.New(), "References", "", "alice")
	require.NoError(t, err)

	updated, err := f.links.UpdateLink(ctx, mustID(t, link.ID), "Supersedes", "replaced by")
	require.NoError(t, err)
	assert.Equal(t, "Supersedes", updated.LinkType)
	assert.Equal(t, "replaced by", updated.Description)

	_, err = f.links.UpdateLink(ctx, uuid.New(), "References", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkService_RemoveLinkKeepsProvenance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.New()
	link, err := f.links.AddLink(ctx, a, uuid.New(), "References", "", "alice")
	require.NoError(t, err)

	require.NoError(t, f.links.RemoveLink(ctx, mustID(t, link.ID)))

	// the audit entry is tagged to the source document with the original creator
	entries, err := f.activity.ListForNode(ctx, model.NodeTypeDocument, a)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "link.remove", entries[0].Action)
	assert.Equal(t, "alice", entries[0].UserID)

	assert.ErrorIs(t, f.links.RemoveLink(ctx, mustID(t, link.ID)), ErrNotFound)
}

func TestLinkService_CountLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	_, err := f.links.AddLink(ctx, a, b, "References", "", "alice")
	require.NoError(t, err)
	_, err = f.links.AddLink(ctx, a, c, "References", "", "alice")
	require.NoError(t, err)
	_, err = f.links.AddLink(ctx, b, a, "References", "", "alice")
	require.NoError(t, err)

	// counting is direction aware: only outgoing edges contribute
	count, err := f.links.CountLinks(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
