package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
)

const healthPath = "/health"

type httpClassifierAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPClassifierAdapter constructs an HTTP implementation of
// [ClassifierAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPClassifierAdapter(cfg config.Adapter, logger *logger.Logger) (ClassifierAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpClassifierAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Available implements [ClassifierAdapter] by probing GET /health.
func (h *httpClassifierAdapter) Available(ctx context.Context) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*httpClassifierAdapter.Available").Msg("classifier health request failed")
		return false
	}

	if err = probeError(resp); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*httpClassifierAdapter.Available").Msg("classifier reported unhealthy")
		return false
	}

	return true
}

func (h *httpClassifierAdapter) Close() error {
	return nil
}
