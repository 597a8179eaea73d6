package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcutService_CreateShortcut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	other := f.createFolder(t, cabinet.ID, nil, "onboarding")
	doc := f.createDocument(t, home.ID, "offer-letter")

	shortcut, err := f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, other.ID), "alice")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, shortcut.DocumentID)
	assert.Equal(t, other.ID, shortcut.FolderID)
	assert.Equal(t, "offer-letter", shortcut.DocumentName)
	assert.Equal(t, "onboarding", shortcut.FolderName)
	assert.Equal(t, other.Path, shortcut.FolderPath)
}

func TestShortcutService_HomeFolderRejected(t *testing.T) {
	f := newFixture(t)

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	doc := f.createDocument(t, home.ID, "offer-letter")

	_, err := f.shortcuts.CreateShortcut(context.Background(), mustID(t, doc.ID), mustID(t, home.ID), "alice")
	assert.ErrorIs(t, err, ErrSelfFolder)
}

func TestShortcutService_DuplicatePairFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	other := f.createFolder(t, cabinet.ID, nil, "onboarding")
	doc := f.createDocument(t, home.ID, "offer-letter")

	_, err := f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, other.ID), "alice")
	require.NoError(t, err)

	_, err = f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, other.ID), "bob")
	assert.ErrorIs(t, err, ErrDuplicateShortcut)
}

func TestShortcutService_MissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	doc := f.createDocument(t, home.ID, "offer-letter")

	_, err := f.shortcuts.CreateShortcut(ctx, uuid.New(), mustID(t, home.ID), "alice")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), uuid.New(), "alice")
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestShortcutService_RemoveShortcut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	other := f.createFolder(t, cabinet.ID, nil, "onboarding")
	doc := f.createDocument(t, home.ID, "offer-letter")

	shortcut, err := f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, other.ID), "alice")
	require.NoError(t, err)

	require.NoError(t, f.shortcuts.RemoveShortcut(ctx, mustID(t, shortcut.ID)))

	// removing again reports the miss instead of a second success
	assert.ErrorIs(t, f.shortcuts.RemoveShortcut(ctx, mustID(t, shortcut.ID)), ErrNotFound)
}

func TestShortcutService_ListInInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "hr")
	home := f.createFolder(t, cabinet.ID, nil, "contracts")
	first := f.createFolder(t, cabinet.ID, nil, "onboarding")
	second := f.createFolder(t, cabinet.ID, nil, "archive")
	doc := f.createDocument(t, home.ID, "offer-letter")

	_, err := f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, first.ID), "alice")
	require.NoError(t, err)
	_, err = f.shortcuts.CreateShortcut(ctx, mustID(t, doc.ID), mustID(t, second.ID), "alice")
	require.NoError(t, err)

	shortcuts, err := f.shortcuts.ListShortcutsForDocument(ctx, mustID(t, doc.ID))
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)
	assert.Equal(t, first.ID, shortcuts[0].FolderID)
	assert.Equal(t, second.ID, shortcuts[1].FolderID)
}
