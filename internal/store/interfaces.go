package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-photo-gate/models"
)

// SubmissionRepository persists photo submissions.
type SubmissionRepository interface {
	// CreateSubmission inserts s and returns it with ID and CreatedAt set.
	CreateSubmission(ctx context.Context, s models.Submission) (models.Submission, error)
	// GetSubmission returns [ErrSubmissionNotFound] for unknown ids.
	GetSubmission(ctx context.Context, id int64) (models.Submission, error)
	// ListPendingIDs returns at most limit ids of the submitter's pending
	// submissions.
	ListPendingIDs(ctx context.Context, submitterID int64, limit int) ([]int64, error)
	// ExistsByHash reports whether any submission in one of statuses carries
	// the given file hash.
	ExistsByHash(ctx context.Context, hash string, statuses []models.SubmissionStatus) (bool, error)
	// SubmissionNameExists reports whether a submission already uses name.
	SubmissionNameExists(ctx context.Context, name string) (bool, error)
	// Finalize renames the submission, designates its primary media and
	// records provenance if none is recorded yet. A name collision yields
	// [ErrSubmissionNameTaken].
	Finalize(ctx context.Context, f models.Finalization) error
	// DeleteWithMedia hard-deletes the submission (when submissionID > 0),
	// every media row attached to it and every media row in mediaIDs, in one
	// transaction. The deleted media are returned so their files can be
	// removed.
	DeleteWithMedia(ctx context.Context, submissionID int64, mediaIDs []int64) ([]models.Media, error)
}

// MediaRepository persists stored file references.
type MediaRepository interface {
	CreateMedia(ctx context.Context, m models.Media) (models.Media, error)
	// GetMedia returns [ErrMediaNotFound] for unknown ids.
	GetMedia(ctx context.Context, id int64) (models.Media, error)
	AttachMedia(ctx context.Context, mediaID, submissionID int64) error
	// RenameMedia returns [ErrMediaNameTaken] when name is already used.
	RenameMedia(ctx context.Context, mediaID int64, name, title string) error
	MediaNameExists(ctx context.Context, name string) (bool, error)
}

// SubmitterRepository reads submitter records.
type SubmitterRepository interface {
	// GetSubmitter returns [ErrSubmitterNotFound] for unknown ids.
	GetSubmitter(ctx context.Context, id int64) (models.Submitter, error)
}

// ReasonStore is a keyed store of rejection reasons with expiry.
type ReasonStore interface {
	// PutReason records reason under key until expiresAt, replacing any
	// previous value.
	PutReason(ctx context.Context, key string, reason models.RejectionReason, expiresAt time.Time) error
	// TakeReason atomically reads and removes the reason under key. Expired
	// or missing entries yield [ErrReasonNotFound].
	TakeReason(ctx context.Context, key string, now time.Time) (models.RejectionReason, error)
	// PurgeExpired removes entries that expired at or before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// PhotoFileStorage keeps the bytes of admitted photos.
type PhotoFileStorage interface {
	// Save writes r under name and returns the stored path and byte count.
	Save(ctx context.Context, name string, r io.Reader) (path string, size int64, err error)
	// Open returns [ErrFileNotFound] when the path does not exist.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Remove returns [ErrFileNotFound] when the path does not exist.
	Remove(ctx context.Context, path string) error
	// Writable reports whether new files can currently be stored.
	Writable(ctx context.Context) bool
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
