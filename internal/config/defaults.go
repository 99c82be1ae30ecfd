package config

import "time"

const (
	DefaultMaxPendingSubmissions = 5
	DefaultMinPhotoDimension     = 2000
	DefaultMaxDescriptionLength  = 250
	DefaultReasonTTL             = 3 * time.Minute
	DefaultSessionDuration       = 24 * time.Hour
	DefaultRedirectURL           = "/submit/"
	DefaultMaxMultipartMemory    = 32 << 20
	DefaultMaxUploadSize         = 64 << 20
	DefaultRequestTimeout        = 30 * time.Second
	DefaultAdapterTimeout        = 5 * time.Second
	DefaultCleanupInterval       = time.Minute
	DefaultHealthInterval        = 15 * time.Second
	DefaultReasonBackend         = ReasonBackendPostgres
	DefaultLogLevel              = "info"
)

// applyDefaults fills every field that is still zero after merging.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Uploads.MaxPendingSubmissions == 0 {
		cfg.Uploads.MaxPendingSubmissions = DefaultMaxPendingSubmissions
	}
	if cfg.Uploads.MinPhotoDimension == 0 {
		cfg.Uploads.MinPhotoDimension = DefaultMinPhotoDimension
	}
	if cfg.Uploads.MaxDescriptionLength == 0 {
		cfg.Uploads.MaxDescriptionLength = DefaultMaxDescriptionLength
	}
	if cfg.Uploads.ReasonTTL == 0 {
		cfg.Uploads.ReasonTTL = DefaultReasonTTL
	}
	if cfg.Uploads.RedirectURL == "" {
		cfg.Uploads.RedirectURL = DefaultRedirectURL
	}
	if cfg.Uploads.MaxMultipartMemory == 0 {
		cfg.Uploads.MaxMultipartMemory = DefaultMaxMultipartMemory
	}
	if cfg.Uploads.MaxUploadSize == 0 {
		cfg.Uploads.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Workers.CleanupInterval == 0 {
		cfg.Workers.CleanupInterval = DefaultCleanupInterval
	}
	if cfg.Workers.HealthInterval == 0 {
		cfg.Workers.HealthInterval = DefaultHealthInterval
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.ReasonBackend == "" {
		cfg.Storage.ReasonBackend = DefaultReasonBackend
	}
}
