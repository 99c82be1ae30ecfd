// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
)

// ReasonCleanup periodically purges expired rejection reasons. Reading an
// expired reason already fails, so the cleanup only bounds storage.
type ReasonCleanup struct {
	reasons  ReasonPurger
	interval time.Duration
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewReasonCleanup(reasons ReasonPurger, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *ReasonCleanup {
	return &ReasonCleanup{
		reasons:  reasons,
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
}

func (c *ReasonCleanup) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("rejection reason cleanup started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("rejection reason cleanup stopped")
			return
		case <-ticker.C:
			c.purge(ctx)
		}
	}
}

func (c *ReasonCleanup) purge(ctx context.Context) {
	purged, err := c.reasons.PurgeExpired(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*ReasonCleanup.purge").Msg("error purging expired rejection reasons")
		return
	}

	c.metrics.ObservePurgedReasons(purged)
	if purged > 0 {
		c.logger.Debug().Int64("purged", purged).Msg("expired rejection reasons purged")
	}
}
