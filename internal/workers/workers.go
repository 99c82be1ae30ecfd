package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the reason cleanup worker and, when health is not nil,
// the health refresher.
func NewWorkers(reasons ReasonPurger, health StatusRefresher, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *Workers {
	w := &Workers{
		workers: []Worker{NewReasonCleanup(reasons, cfg.CleanupInterval, m, logger)},
	}
	if health != nil {
		w.workers = append(w.workers, NewHealthRefresher(health, cfg.HealthInterval, logger))
	}
	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
