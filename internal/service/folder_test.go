package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderService_PathMaterialization(t *testing.T) {
	f := newFixture(t)

	cabinet := f.createCabinet(t, "engineering")
	root := f.createFolder(t, cabinet.ID, nil, "design")
	assert.Equal(t, "/engineering/design", root.Path)
	assert.Nil(t, root.ParentID)

	child := f.createFolder(t, cabinet.ID, &root.ID, "rfcs")
	assert.Equal(t, "/engineering/design/rfcs", child.Path)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)
}

func TestFolderService_ParentMustShareCabinet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createCabinet(t, "engineering")
	second := f.createCabinet(t, "marketing")
	parent := f.createFolder(t, first.ID, nil, "design")

	parentID := mustID(t, parent.ID)
	_, err := f.folders.CreateFolder(ctx, mustID(t, second.ID), &parentID, "campaigns", "tester")
	assert.ErrorIs(t, err, ErrValidation)

	missing := uuid.New()
	_, err = f.folders.CreateFolder(ctx, mustID(t, first.ID), &missing, "orphan", "tester")
	assert.ErrorIs(t, err, ErrFolderNotFound)

	_, err = f.folders.CreateFolder(ctx, uuid.New(), nil, "nowhere", "tester")
	assert.ErrorIs(t, err, ErrCabinetNotFound)
}

func TestFolderService_RenameFolder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "engineering")
	folder := f.createFolder(t, cabinet.ID, nil, "design")

	renamed, err := f.folders.RenameFolder(ctx, mustID(t, folder.ID), "architecture", "tester")
	require.NoError(t, err)
	assert.Equal(t, "architecture", renamed.Name)
	assert.Equal(t, "/engineering/architecture", renamed.Path)
}

func TestFolderService_DeleteFolderTombstonesTree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "engineering")
	root := f.createFolder(t, cabinet.ID, nil, "design")
	child := f.createFolder(t, cabinet.ID, &root.ID, "rfcs")
	doc := f.createDocument(t, child.ID, "rfc-001")

	require.NoError(t, f.folders.DeleteFolder(ctx, mustID(t, root.ID), "alice"))

	_, err := f.folders.GetFolder(ctx, mustID(t, root.ID))
	assert.ErrorIs(t, err, ErrFolderNotFound)
	_, err = f.folders.GetFolder(ctx, mustID(t, child.ID))
	assert.ErrorIs(t, err, ErrFolderNotFound)
	_, err = f.docs.GetDocument(ctx, mustID(t, doc.ID))
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NotNil(t, findTombstone(t, f, root.ID))
	require.NotNil(t, findTombstone(t, f, child.ID))
	docStone := findTombstone(t, f, doc.ID)
	require.NotNil(t, docStone)
	assert.Equal(t, "/engineering/design/rfcs/rfc-001", docStone.OriginalPath)
}
