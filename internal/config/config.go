// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// photo submission service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token keys and the
	// application version.
	App App `envPrefix:"APP_"`

	// Uploads holds the admission and validation rules for photo submissions.
	Uploads Uploads `envPrefix:"UPLOADS_"`

	// Storage holds configuration for the relational database and the
	// directory where stored photos live.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the content-classification service whose
	// availability gates uploads.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to verify submitter bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of submitter bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionSignKey signs the session cookie that scopes rejection reasons.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionDuration is the lifetime of the session cookie.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Uploads holds the admission and validation rules.
type Uploads struct {
	// Killswitch disables all uploads when true.
	// Env: UPLOADS_KILLSWITCH
	Killswitch bool `env:"KILLSWITCH"`

	// MaxPendingSubmissions is the per-submitter ceiling of submissions
	// awaiting moderation.
	// Env: UPLOADS_MAX_PENDING_SUBMISSIONS
	MaxPendingSubmissions int `env:"MAX_PENDING_SUBMISSIONS"`

	// MinPhotoDimension is the minimum width and the minimum height in pixels.
	// Env: UPLOADS_MIN_PHOTO_DIMENSION
	MinPhotoDimension int `env:"MIN_PHOTO_DIMENSION"`

	// MaxDescriptionLength is the maximum number of characters kept from the
	// submitted description.
	// Env: UPLOADS_MAX_DESCRIPTION_LENGTH
	MaxDescriptionLength int `env:"MAX_DESCRIPTION_LENGTH"`

	// ReasonTTL bounds how long a rejection reason waits to be consumed.
	// Env: UPLOADS_REASON_TTL
	ReasonTTL time.Duration `env:"REASON_TTL"`

	// RedirectURL is the page the submit endpoint redirects to.
	// Env: UPLOADS_REDIRECT_URL
	RedirectURL string `env:"REDIRECT_URL"`

	// MaxMultipartMemory is the number of bytes of a multipart body kept in
	// memory before spilling file parts to disk.
	// Env: UPLOADS_MAX_MULTIPART_MEMORY
	MaxMultipartMemory int64 `env:"MAX_MULTIPART_MEMORY"`

	// MaxUploadSize caps the size in bytes of a whole submit request body.
	// Env: UPLOADS_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// AllowedSubmitters restricts uploads to the listed submitter ids when
	// non-empty. Used for staged rollouts.
	// Env: UPLOADS_ALLOWED_SUBMITTERS (comma separated)
	AllowedSubmitters []int64 `env:"ALLOWED_SUBMITTERS" envSeparator:","`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for stored photos.
	Files Files `envPrefix:"FILES_"`

	// ReasonBackend selects where rejection reasons are kept: "postgres"
	// (shared by every instance) or "memory" (single instance only).
	// Env: STORAGE_REASON_BACKEND
	ReasonBackend string `env:"REASON_BACKEND"`
}

// Rejection reason backends accepted by Storage.ReasonBackend.
const (
	ReasonBackendPostgres = "postgres"
	ReasonBackendMemory   = "memory"
)

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for stored photos.
type Files struct {
	// PhotoDir is the directory where admitted photos are written under
	// obfuscated names.
	// Env: STORAGE_FILES_PHOTO_DIR
	PhotoDir string `env:"PHOTO_DIR"`
}

// Adapter holds the address of the content-classification service.
// Exactly one of HTTPAddress or GRPCAddress is normally set; when both are
// empty the classifier is considered not configured and uploads are disabled.
type Adapter struct {
	// HTTPAddress is the base URL of the classifier HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the classifier gRPC address ("host:port").
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds each availability probe.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CleanupInterval is how often expired rejection reasons are purged.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// HealthInterval is how often the gRPC health status is re-evaluated.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still zero after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
