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

type mediaRepository struct {
	*DB
	logger *logger.Logger
}

// NewMediaRepository constructs a [MediaRepository] backed by db.
func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	logger.Debug().Msg("creating media repository")
	return &mediaRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *mediaRepository) CreateMedia(ctx context.Context, m models.Media) (models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMediaQuery(m)
	if err != nil {
		return models.Media{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Media{}, ErrNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.CreateMedia").Str("file_path", m.FilePath).Msg("failed to insert media")
		return models.Media{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return m, nil
}

func (r *mediaRepository) GetMedia(ctx context.Context, id int64) (models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMediaQuery(id)
	if err != nil {
		return models.Media{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		m            models.Media
		submissionID sql.NullInt64
	)
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(
			&m.ID,
			&submissionID,
			&m.FilePath,
			&m.MimeType,
			&m.Size,
			&m.Width,
			&m.Height,
			&m.Name,
			&m.Title,
			&m.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Media{}, ErrMediaNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.GetMedia").Int64("media_id", id).Msg("failed to scan media row")
		return models.Media{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if submissionID.Valid {
		m.SubmissionID = &submissionID.Int64
	}

	return m, nil
}

func (r *mediaRepository) AttachMedia(ctx context.Context, mediaID, submissionID int64) error {
	query, args, err := buildAttachMediaQuery(mediaID, submissionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*mediaRepository.AttachMedia", query, args)
}

func (r *mediaRepository) RenameMedia(ctx context.Context, mediaID int64, name, title string) error {
	query, args, err := buildRenameMediaQuery(mediaID, name, title)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execOne(ctx, "*mediaRepository.RenameMedia", query, args)
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrMediaNameTaken
	}
	return err
}

func (r *mediaRepository) MediaNameExists(ctx context.Context, name string) (bool, error) {
	query, args, err := buildMediaNameExistsQuery(name)
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
		logger.FromContext(ctx).Err(err).Str("func", "*mediaRepository.MediaNameExists").Msg("failed to look up media name")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// execOne executes a single-row update and maps zero affected rows to
// [ErrMediaNotFound].
func (r *mediaRepository) execOne(ctx context.Context, funcName, query string, args []any) error {
	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrMediaNotFound
	}

	return nil
}
