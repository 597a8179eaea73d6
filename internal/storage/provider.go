package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrImmutableConflict is returned when Save targets a path that
	// already holds immutable content.
	ErrImmutableConflict = errors.New("storage: target already exists and is immutable")
	// ErrProviderNotFound is returned when no provider is registered
	// under the requested name.
	ErrProviderNotFound = errors.New("storage: provider not found")
)

// Provider abstracts physical persistence of document content. Content is
// addressed by a caller supplied relative path; the provider owns the
// mapping from that path to physical bytes.
type Provider interface {
	// Save writes content at relPath, creating missing intermediate
	// directories, and flushes durably before returning. It returns the
	// resolved path.
	Save(ctx context.Context, content io.Reader, relPath string) (string, error)
	// Get opens the content at relPath. A missing object returns
	// (nil, nil), never an error.
	Get(ctx context.Context, relPath string) (io.ReadCloser, error)
	// Exists reports whether an object is present at relPath.
	Exists(ctx context.Context, relPath string) (bool, error)
	// Delete removes the object and reports whether it was removed. An
	// immutable provider always reports false and never errors on the
	// denial itself.
	Delete(ctx context.Context, relPath string) (bool, error)
	// Name identifies the provider for routing and auditing.
	Name() string
	// Immutable reports whether the provider enforces write-once-read-many.
	Immutable() bool
}

// Registry holds the configured providers and routes new content.
type Registry struct {
	providers map[string]Provider
	mutable   Provider
	immutable Provider
}

func NewRegistry(mutable, immutable Provider) *Registry {
	registry := &Registry{
		providers: make(map[string]Provider),
		mutable:   mutable,
		immutable: immutable,
	}
	for _, p := range []Provider{mutable, immutable} {
		if p != nil {
			registry.providers[p.Name()] = p
		}
	}
	return registry
}

// Provide returns the provider registered under name.
func (r *Registry) Provide(name string) (Provider, error) {
	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	return nil, ErrProviderNotFound
}

// Route picks the provider for new content. Retention hold content goes
// to the immutable provider when one is configured.
func (r *Registry) Route(retentionHold bool) Provider {
	if retentionHold && r.immutable != nil {
		return r.immutable
	}
	return r.mutable
}
