package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
)

// Storages aggregates every persistence component used by the services.
type Storages struct {
	DB                   *DB
	SubmissionRepository SubmissionRepository
	MediaRepository      MediaRepository
	SubmitterRepository  SubmitterRepository
	ReasonStore          ReasonStore
	PhotoFileStorage     PhotoFileStorage
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. Rejection reasons live in PostgreSQL unless cfg selects the
// in-memory backend, which only works with a single instance because the
// redirected page load must reach the instance that stored the reason.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return newStorages(db, cfg, log)
}

// newStorages takes ownership of db and closes it if any later step fails.
func newStorages(db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	files, err := NewPhotoFileStorage(cfg.Files.PhotoDir, log)
	if err != nil {
		closeDB(db, log)
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "newStorages").Msg("error applying migrations")
		closeDB(db, log)
		return nil, err
	}

	return &Storages{
		DB:                   db,
		SubmissionRepository: NewSubmissionRepository(db, log),
		MediaRepository:      NewMediaRepository(db, log),
		SubmitterRepository:  NewSubmitterRepository(db, log),
		ReasonStore:          newReasonStore(cfg.ReasonBackend, db, log),
		PhotoFileStorage:     files,
	}, nil
}

func closeDB(db *DB, log *logger.Logger) {
	if err := db.Close(); err != nil {
		log.Err(err).Str("func", "closeDB").Msg("error closing database")
	}
}

func newReasonStore(backend string, db *DB, log *logger.Logger) ReasonStore {
	if backend == config.ReasonBackendMemory {
		log.Warn().Msg("rejection reasons are kept in memory, run a single instance only")
		return NewMemoryReasonStore()
	}
	return NewReasonRepository(db, log)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
