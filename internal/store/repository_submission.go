// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/jackc/pgerrcode"
)

// submissionRepository is the PostgreSQL-backed implementation of
// [SubmissionRepository] over the "submissions" and "media" tables.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions carry the request's
// trace id.
type submissionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSubmission inserts a new submission and returns it with the
// server-assigned ID and CreatedAt.
func (r *submissionRepository) CreateSubmission(ctx context.Context, s models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSubmissionQuery(s)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.CreateSubmission").Msg("failed to build query")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, ErrNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.CreateSubmission").
			Int64("submitter_id", s.SubmitterID).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return s, nil
}

// GetSubmission loads a submission by id.
func (r *submissionRepository) GetSubmission(ctx context.Context, id int64) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubmissionQuery(id)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s         models.Submission
		status    string
		primaryID sql.NullInt64
	)
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(
			&s.ID,
			&s.SubmitterID,
			&status,
			&s.Name,
			&s.Title,
			&s.Description,
			&primaryID,
			&s.Provenance.OriginalFilename,
			&s.Provenance.OriginalSize,
			&s.Provenance.FileHash,
			&s.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.GetSubmission").Int64("submission_id", id).Msg("failed to scan submission row")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	s.Status = models.SubmissionStatus(status)
	if primaryID.Valid {
		s.PrimaryMediaID = &primaryID.Int64
	}

	return s, nil
}

// ListPendingIDs returns at most limit pending submission ids of the submitter.
func (r *submissionRepository) ListPendingIDs(ctx context.Context, submitterID int64, limit int) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingIDsQuery(submitterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ids []int64
	err = r.withRetry(ctx, func() error {
		ids = ids[:0]

		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var id int64
			if scanErr := rows.Scan(&id); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			ids = append(ids, id)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.ListPendingIDs").
			Int64("submitter_id", submitterID).
			Msg("failed to list pending submissions")
		return nil, err
	}

	return ids, nil
}

// ExistsByHash reports whether a submission with one of statuses carries hash.
func (r *submissionRepository) ExistsByHash(ctx context.Context, hash string, statuses []models.SubmissionStatus) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsByHashQuery(hash, statuses)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.ExistsByHash").Msg("failed to look up file hash")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *submissionRepository) SubmissionNameExists(ctx context.Context, name string) (bool, error) {
	query, args, err := buildSubmissionNameExistsQuery(name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionRepository.SubmissionNameExists").Msg("failed to look up submission name")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Finalize applies f to the submission.
func (r *submissionRepository) Finalize(ctx context.Context, f models.Finalization) error {
	log := logger.FromContext(ctx)

	query, args, err := buildFinalizeSubmissionQuery(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrSubmissionNameTaken
	}
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.Finalize").
			Int64("submission_id", f.SubmissionID).
			Msg("failed to finalize submission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// DeleteWithMedia removes the submission and its media in one transaction.
func (r *submissionRepository) DeleteWithMedia(ctx context.Context, submissionID int64, mediaIDs []int64) ([]models.Media, error) {
	log := logger.FromContext(ctx)

	mediaQuery, mediaArgs, err := buildDeleteMediaQuery(submissionID, mediaIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.DeleteWithMedia").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, mediaQuery, mediaArgs...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.DeleteWithMedia").Msg("failed to delete media")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed := make([]models.Media, 0, len(mediaIDs)+1)
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.FilePath); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		removed = append(removed, m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if submissionID > 0 {
		query, args, err := buildDeleteSubmissionQuery(submissionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*submissionRepository.DeleteWithMedia").
				Int64("submission_id", submissionID).
				Msg("failed to delete submission")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*submissionRepository.DeleteWithMedia").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return removed, nil
}
