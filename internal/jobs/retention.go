package jobs

import (
	"context"

	"github.com/emrgen/cabinet/internal/service"
	"github.com/sirupsen/logrus"
)

// RecycleBinCleaner purges tombstones whose retention window has ended.
type RecycleBinCleaner struct {
	bin      *service.RecycleBinService
	schedule string
}

// NewRecycleBinCleaner creates a new RecycleBinCleaner instance.
func NewRecycleBinCleaner(bin *service.RecycleBinService, schedule string) *RecycleBinCleaner {
	return &RecycleBinCleaner{
		bin:      bin,
		schedule: schedule,
	}
}

func (c *RecycleBinCleaner) Schedule() string {
	return c.schedule
}

func (c *RecycleBinCleaner) Run() {
	purged, err := c.bin.PurgeExpired(context.Background())
	if err != nil {
		logrus.Errorf("retention: failed to purge expired tombstones: %v", err)
		return
	}

	if purged > 0 {
		logrus.Infof("retention: purged %d expired tombstones", purged)
	}
}
