package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
)

// HealthRefresher keeps the gRPC health status in step with the killswitch
// and with the reachability of intake and classifier.
type HealthRefresher struct {
	target   StatusRefresher
	interval time.Duration

	logger *logger.Logger
}

func NewHealthRefresher(target StatusRefresher, interval time.Duration, logger *logger.Logger) *HealthRefresher {
	return &HealthRefresher{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

func (h *HealthRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, h.interval)
			h.target.RefreshStatus(probeCtx)
			cancel()
		}
	}
}
