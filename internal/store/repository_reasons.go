package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/models"
)

// reasonRepository keeps rejection reasons in the "rejection_reasons" table.
// TakeReason is a single DELETE ... RETURNING, so concurrent readers of the
// same key never both receive the reason.
type reasonRepository struct {
	*DB
	logger *logger.Logger
}

func NewReasonRepository(db *DB, logger *logger.Logger) ReasonStore {
	logger.Debug().Msg("creating rejection reason repository")
	return &reasonRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reasonRepository) PutReason(ctx context.Context, key string, reason models.RejectionReason, expiresAt time.Time) error {
	query, args, err := buildUpsertReasonQuery(key, reason, expiresAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*reasonRepository.PutReason").
			Str("reason", reason.String()).
			Msg("failed to store rejection reason")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *reasonRepository) TakeReason(ctx context.Context, key string, now time.Time) (models.RejectionReason, error) {
	query, args, err := buildTakeReasonQuery(key)
	if err != nil {
		return models.ReasonNone, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		raw       string
		expiresAt time.Time
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&raw, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReasonNone, ErrReasonNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reasonRepository.TakeReason").Msg("failed to take rejection reason")
		return models.ReasonNone, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if !expiresAt.After(now) {
		return models.ReasonNone, ErrReasonNotFound
	}

	reason, ok := models.ParseRejectionReason(raw)
	if !ok {
		logger.FromContext(ctx).Warn().Str("func", "*reasonRepository.TakeReason").Str("reason", raw).Msg("unknown rejection reason in store")
		return models.ReasonNone, ErrReasonNotFound
	}

	return reason, nil
}

func (r *reasonRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildPurgeReasonsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reasonRepository.PurgeExpired").Msg("failed to purge rejection reasons")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}
