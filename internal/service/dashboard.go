package service

import (
	"context"
	"time"

	"github.com/emrgen/cabinet/internal/cache"
	"github.com/emrgen/cabinet/internal/store"
	"github.com/sirupsen/logrus"
)

const dashboardCacheTTL = time.Minute

// DashboardStats are the aggregates shown on the landing page.
type DashboardStats struct {
	Cabinets       int64       `json:"cabinets"`
	Folders        int64       `json:"folders"`
	Documents      int64       `json:"documents"`
	Tombstoned     int64       `json:"tombstoned"`
	RecentActivity []*Activity `json:"recentActivity"`
}

// StatsCache is the cache capability the dashboard needs. Satisfied by
// cache.Redis; a nil cache disables caching entirely.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// NewDashboardService creates a new DashboardService. statsCache may be
// nil, in which case every call hits the database.
func NewDashboardService(store store.Store, statsCache StatsCache) *DashboardService {
	return &DashboardService{
		store:    store,
		cache:    statsCache,
		activity: NewActivityService(store),
	}
}

type DashboardService struct {
	store    store.Store
	cache    StatsCache
	activity *ActivityService
}

// Stats returns the dashboard aggregates, served from the cache when
// fresh. Cache failures fall through to the database.
func (d *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if d.cache != nil {
		var cached DashboardStats
		hit, err := d.cache.GetJSON(ctx, cache.DashboardStatsKey(), &cached)
		if err != nil {
			logrus.Warnf("dashboard: cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	var err error

	if stats.Cabinets, err = d.store.CountCabinets(ctx); err != nil {
		return nil, err
	}
	if stats.Folders, err = d.store.CountFolders(ctx); err != nil {
		return nil, err
	}
	if stats.Documents, err = d.store.CountDocuments(ctx); err != nil {
		return nil, err
	}
	if stats.Tombstoned, err = d.store.CountRecycleBinItems(ctx); err != nil {
		return nil, err
	}
	if stats.RecentActivity, err = d.activity.ListRecent(ctx, 10); err != nil {
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.SetJSON(ctx, cache.DashboardStatsKey(), stats, dashboardCacheTTL); err != nil {
			logrus.Warnf("dashboard: cache write failed: %v", err)
		}
	}

	return stats, nil
}
