package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emrgen/cabinet/internal/compress"
	"github.com/emrgen/cabinet/internal/storage"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/emrgen/cabinet/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires the services the way a caller would, over the shared
// test database and per-test content roots.
type fixture struct {
	store     store.Store
	providers *storage.Registry
	bin       *RecycleBinService
	links     *LinkService
	shortcuts *ShortcutService
	cabinets  *CabinetService
	folders   *FolderService
	docs      *DocumentService
	activity  *ActivityService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gormStore := store.NewGormStore(tester.TestDB())
	providers := storage.NewRegistry(storage.NewDisk(t.TempDir()), storage.NewWORMDisk(t.TempDir()))
	codec := compress.NewGZip()
	sink := NewStoreSink(gormStore)
	bin := NewRecycleBinService(gormStore, providers, codec, sink, 30*24*time.Hour)

	return &fixture{
		store:     gormStore,
		providers: providers,
		bin:       bin,
		links:     NewLinkService(gormStore, sink),
		shortcuts: NewShortcutService(gormStore),
		cabinets:  NewCabinetService(gormStore, bin, sink),
		folders:   NewFolderService(gormStore, bin, sink),
		docs:      NewDocumentService(gormStore, providers, codec, bin, sink),
		activity:  NewActivityService(gormStore),
	}
}

func mustID(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	return parsed
}

func (f *fixture) createCabinet(t *testing.T, name string) *Cabinet {
	t.Helper()
	cabinet, err := f.cabinets.CreateCabinet(context.Background(), name, "", "tester")
	require.NoError(t, err)
	return cabinet
}

func (f *fixture) createFolder(t *testing.T, cabinetID string, parentID *string, name string) *Folder {
	t.Helper()

	var parent *uuid.UUID
	if parentID != nil {
		id := mustID(t, *parentID)
		parent = &id
	}

	folder, err := f.folders.CreateFolder(context.Background(), mustID(t, cabinetID), parent, name, "tester")
	require.NoError(t, err)
	return folder
}

func (f *fixture) createDocument(t *testing.T, folderID, title string) *Document {
	t.Helper()
	doc, err := f.docs.CreateDocument(context.Background(), CreateDocumentInput{
		FolderID: mustID(t, folderID),
		Title:    title,
		FileName: title + ".txt",
		Content:  strings.NewReader("content of " + title),
		Actor:    "tester",
	})
	require.NoError(t, err)
	return doc
}
