package adapter

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
)

// NewClassifierAdapter returns the gRPC adapter when cfg.GRPCAddress is set,
// the HTTP adapter when cfg.HTTPAddress is set, and otherwise an adapter
// that always reports the classifier as unavailable.
func NewClassifierAdapter(cfg config.Adapter, log *logger.Logger) (ClassifierAdapter, error) {
	switch {
	case cfg.GRPCAddress != "":
		return NewGRPCClassifierAdapter(cfg, log)
	case cfg.HTTPAddress != "":
		return NewHTTPClassifierAdapter(cfg, log)
	default:
		log.Warn().Str("func", "NewClassifierAdapter").Msg("classifier address is not configured: uploads stay disabled")
		return unconfiguredAdapter{}, nil
	}
}

type unconfiguredAdapter struct{}

func (unconfiguredAdapter) Available(context.Context) bool { return false }

func (unconfiguredAdapter) Close() error { return nil }
