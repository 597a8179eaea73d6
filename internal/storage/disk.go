package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var _ Provider = (*Disk)(nil)

// Disk stores content on the local filesystem under a root directory.
// All four operations behave literally; Delete removes bytes.
type Disk struct {
	root string
	name string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root, name: "disk"}
}

func (d *Disk) Name() string {
	return d.name
}

func (d *Disk) Immutable() bool {
	return false
}

func (d *Disk) resolve(relPath string) (string, error) {
	abs := filepath.Join(d.root, filepath.FromSlash(relPath))
	// keep relPath inside the root
	rel, err := filepath.Rel(d.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("storage: path escapes root")
	}
	return abs, nil
}

func (d *Disk) Save(ctx context.Context, content io.Reader, relPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := d.resolve(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}

	if err := writeDurably(file, content); err != nil {
		return "", err
	}

	return abs, nil
}

func (d *Disk) Get(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := d.resolve(relPath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return file, nil
}

func (d *Disk) Exists(ctx context.Context, relPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	abs, err := d.resolve(relPath)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (d *Disk) Delete(ctx context.Context, relPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	abs, err := d.resolve(relPath)
	if err != nil {
		return false, err
	}

	err = os.Remove(abs)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// writeDurably copies content into file and fsyncs before closing.
func writeDurably(file *os.File, content io.Reader) error {
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		return err
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
