package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var _ Provider = (*WORMDisk)(nil)

// WORMDisk stores content on the local filesystem with write-once
// read-many semantics. Save creates the object exclusively and drops the
// write bits afterwards; Delete always denies. Content written through
// this provider can never be removed by it.
type WORMDisk struct {
	disk *Disk
	name string
}

func NewWORMDisk(root string) *WORMDisk {
	return &WORMDisk{
		disk: NewDisk(root),
		name: "worm-disk",
	}
}

func (w *WORMDisk) Name() string {
	return w.name
}

func (w *WORMDisk) Immutable() bool {
	return true
}

func (w *WORMDisk) Save(ctx context.Context, content io.Reader, relPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := w.disk.resolve(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	// O_EXCL closes the race between an existence check and the write:
	// the second writer of the same path loses at the filesystem.
	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return "", ErrImmutableConflict
	}
	if err != nil {
		return "", err
	}

	if err := writeDurably(file, content); err != nil {
		return "", err
	}

	// mark the object non-writable at the storage layer
	if err := os.Chmod(abs, 0o444); err != nil {
		return "", err
	}

	return abs, nil
}

func (w *WORMDisk) Get(ctx context.Context, relPath string) (io.ReadCloser, error) {
	return w.disk.Get(ctx, relPath)
}

func (w *WORMDisk) Exists(ctx context.Context, relPath string) (bool, error) {
	return w.disk.Exists(ctx, relPath)
}

// Delete always denies. The denial is logged and reported as a negative
// result, never as an error.
func (w *WORMDisk) Delete(ctx context.Context, relPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	logrus.Warnf("storage: delete denied on immutable provider %s: %s", w.name, relPath)
	return false, nil
}
