package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/models"
)

// submitterRepository reads the "submitters" table. Accounts are managed by
// the identity service; this service only needs the blocked flag.
type submitterRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSubmitterRepository(db *DB, logger *logger.Logger) SubmitterRepository {
	logger.Debug().Msg("creating submitter repository")
	return &submitterRepository{
		db:     db,
		logger: logger,
	}
}

// GetSubmitter returns the submitter marked as authenticated.
func (r *submitterRepository) GetSubmitter(ctx context.Context, id int64) (models.Submitter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubmitterQuery(id)
	if err != nil {
		return models.Submitter{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var submitter models.Submitter
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&submitter.ID, &submitter.Login, &submitter.Blocked)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submitter{}, ErrSubmitterNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*submitterRepository.GetSubmitter").Int64("submitter_id", id).Msg("error: scanning error")
		return models.Submitter{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	submitter.Authenticated = true
	return submitter, nil
}
