package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_SaveGetRoundTrip(t *testing.T) {
	disk := NewDisk(t.TempDir())
	ctx := context.Background()

	content := []byte("quarterly report")
	resolved, err := disk.Save(ctx, bytes.NewReader(content), "cab1/doc1/v1/report.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, resolved)

	rc, err := disk.Get(ctx, "cab1/doc1/v1/report.pdf")
	require.NoError(t, err)
	require.NotNil(t, rc)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDisk_GetMissingIsAbsentNotError(t *testing.T) {
	disk := NewDisk(t.TempDir())

	rc, err := disk.Get(context.Background(), "no/such/object")
	assert.NoError(t, err)
	assert.Nil(t, rc)
}

func TestDisk_ExistsAndDelete(t *testing.T) {
	disk := NewDisk(t.TempDir())
	ctx := context.Background()

	_, err := disk.Save(ctx, strings.NewReader("x"), "a/b")
	require.NoError(t, err)

	exists, err := disk.Exists(ctx, "a/b")
	require.NoError(t, err)
	assert.True(t, exists)

	removed, err := disk.Delete(ctx, "a/b")
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err = disk.Exists(ctx, "a/b")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting again is a negative result, not an error
	removed, err = disk.Delete(ctx, "a/b")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDisk_PathEscapeRejected(t *testing.T) {
	disk := NewDisk(t.TempDir())

	_, err := disk.Save(context.Background(), strings.NewReader("x"), "../outside")
	assert.Error(t, err)
}

func TestWORMDisk_RoundTripAndDeleteDenied(t *testing.T) {
	worm := NewWORMDisk(t.TempDir())
	ctx := context.Background()

	content := []byte("retention hold record")
	_, err := worm.Save(ctx, bytes.NewReader(content), "cab1/doc1/v1/record")
	require.NoError(t, err)

	assert.True(t, worm.Immutable())

	// delete always denies, never errors
	removed, err := worm.Delete(ctx, "cab1/doc1/v1/record")
	require.NoError(t, err)
	assert.False(t, removed)

	// content remains retrievable after the denied delete
	rc, err := worm.Get(ctx, "cab1/doc1/v1/record")
	require.NoError(t, err)
	require.NotNil(t, rc)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWORMDisk_SaveOnExistingFails(t *testing.T) {
	worm := NewWORMDisk(t.TempDir())
	ctx := context.Background()

	_, err := worm.Save(ctx, strings.NewReader("first"), "cab1/doc1/v1/record")
	require.NoError(t, err)

	_, err = worm.Save(ctx, strings.NewReader("second"), "cab1/doc1/v1/record")
	assert.ErrorIs(t, err, ErrImmutableConflict)

	// the original content is not corrupted
	rc, err := worm.Get(ctx, "cab1/doc1/v1/record")
	require.NoError(t, err)
	require.NotNil(t, rc)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestRegistry_Routing(t *testing.T) {
	disk := NewDisk(t.TempDir())
	worm := NewWORMDisk(t.TempDir())
	registry := NewRegistry(disk, worm)

	assert.Equal(t, disk.Name(), registry.Route(false).Name())
	assert.Equal(t, worm.Name(), registry.Route(true).Name())

	p, err := registry.Provide("worm-disk")
	require.NoError(t, err)
	assert.True(t, p.Immutable())

	_, err = registry.Provide("s3")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
