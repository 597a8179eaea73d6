package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-process StatsCache used to observe cache traffic.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	writes  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.entries[key] = data
	m.writes++
	return nil
}

func TestDashboardService_Stats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cabinet := f.createCabinet(t, "ops")
	folder := f.createFolder(t, cabinet.ID, nil, "runbooks")
	doc := f.createDocument(t, folder.ID, "oncall")
	require.NoError(t, f.docs.DeleteDocument(ctx, mustID(t, doc.ID), "alice"))

	dashboard := NewDashboardService(f.store, nil)

	stats, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Cabinets, int64(1))
	assert.GreaterOrEqual(t, stats.Folders, int64(1))
	assert.GreaterOrEqual(t, stats.Tombstoned, int64(1))
	require.NotEmpty(t, stats.RecentActivity)
	assert.LessOrEqual(t, len(stats.RecentActivity), 10)
}

func TestDashboardService_StatsUsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createCabinet(t, "ops")

	statsCache := newMemoryCache()
	dashboard := NewDashboardService(f.store, statsCache)

	first, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, statsCache.writes)

	// the second call is served from the cache, even as data changes
	f.createCabinet(t, "more")

	second, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, statsCache.hits)
	assert.Equal(t, first.Cabinets, second.Cabinets)
}
