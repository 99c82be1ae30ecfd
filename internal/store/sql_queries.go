package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-photo-gate/models"
)

// psql is the statement builder shared by all PostgreSQL queries.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var submissionColumns = []string{
	"id",
	"submitter_id",
	"status",
	"name",
	"title",
	"description",
	"primary_media_id",
	"original_filename",
	"original_filesize",
	"file_hash",
	"created_at",
}

var mediaColumns = []string{
	"id",
	"submission_id",
	"file_path",
	"mime_type",
	"size",
	"width",
	"height",
	"name",
	"title",
	"created_at",
}

// ── submissions ──────────────────────────────────────────────────────────────

func buildInsertSubmissionQuery(s models.Submission) (string, []any, error) {
	return psql.Insert(models.Submission{}.TableName()).
		Columns("submitter_id", "status", "name", "title", "description",
			"original_filename", "original_filesize", "file_hash").
		Values(s.SubmitterID, string(s.Status), s.Name, s.Title, s.Description,
			s.Provenance.OriginalFilename, s.Provenance.OriginalSize, s.Provenance.FileHash).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectSubmissionQuery(id int64) (string, []any, error) {
	return psql.Select(submissionColumns...).
		From(models.Submission{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectPendingIDsQuery(submitterID int64, limit int) (string, []any, error) {
	return psql.Select("id").
		From(models.Submission{}.TableName()).
		Where(sq.Eq{"submitter_id": submitterID, "status": string(models.StatusPending)}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
}

func buildExistsByHashQuery(hash string, statuses []models.SubmissionStatus) (string, []any, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}

	return psql.Select("1").
		From(models.Submission{}.TableName()).
		Where(sq.Eq{"file_hash": hash}).
		Where(sq.Eq{"status": names}).
		Limit(1).
		ToSql()
}

// buildFinalizeSubmissionQuery sets the display fields unconditionally and
// the provenance columns only while file_hash is still empty.
func buildFinalizeSubmissionQuery(f models.Finalization) (string, []any, error) {
	return psql.Update(models.Submission{}.TableName()).
		Set("name", f.Name).
		Set("title", f.Title).
		Set("primary_media_id", f.PrimaryMediaID).
		Set("original_filename", sq.Expr("CASE WHEN file_hash = '' THEN ? ELSE original_filename END", f.Provenance.OriginalFilename)).
		Set("original_filesize", sq.Expr("CASE WHEN file_hash = '' THEN ? ELSE original_filesize END", f.Provenance.OriginalSize)).
		Set("file_hash", sq.Expr("CASE WHEN file_hash = '' THEN ? ELSE file_hash END", f.Provenance.FileHash)).
		Where(sq.Eq{"id": f.SubmissionID}).
		ToSql()
}

func buildSubmissionNameExistsQuery(name string) (string, []any, error) {
	return psql.Select("1").
		From(models.Submission{}.TableName()).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

func buildDeleteSubmissionQuery(id int64) (string, []any, error) {
	return psql.Delete(models.Submission{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── media ────────────────────────────────────────────────────────────────────

func buildInsertMediaQuery(m models.Media) (string, []any, error) {
	return psql.Insert(models.Media{}.TableName()).
		Columns("submission_id", "file_path", "mime_type", "size", "width", "height", "name", "title").
		Values(m.SubmissionID, m.FilePath, m.MimeType, m.Size, m.Width, m.Height, m.Name, m.Title).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectMediaQuery(id int64) (string, []any, error) {
	return psql.Select(mediaColumns...).
		From(models.Media{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildAttachMediaQuery(mediaID, submissionID int64) (string, []any, error) {
	return psql.Update(models.Media{}.TableName()).
		Set("submission_id", submissionID).
		Where(sq.Eq{"id": mediaID}).
		ToSql()
}

func buildRenameMediaQuery(mediaID int64, name, title string) (string, []any, error) {
	return psql.Update(models.Media{}.TableName()).
		Set("name", name).
		Set("title", title).
		Where(sq.Eq{"id": mediaID}).
		ToSql()
}

func buildMediaNameExistsQuery(name string) (string, []any, error) {
	return psql.Select("1").
		From(models.Media{}.TableName()).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

// buildDeleteMediaQuery deletes media listed in mediaIDs or attached to
// submissionID. A zero submissionID matches no attached rows.
func buildDeleteMediaQuery(submissionID int64, mediaIDs []int64) (string, []any, error) {
	cond := sq.Or{sq.Eq{"id": mediaIDs}}
	if submissionID > 0 {
		cond = append(cond, sq.Eq{"submission_id": submissionID})
	}

	return psql.Delete(models.Media{}.TableName()).
		Where(cond).
		Suffix("RETURNING id, file_path").
		ToSql()
}

// ── submitters ───────────────────────────────────────────────────────────────

func buildSelectSubmitterQuery(id int64) (string, []any, error) {
	return psql.Select("id", "login", "blocked").
		From(models.Submitter{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── rejection reasons ────────────────────────────────────────────────────────

const rejectionReasonsTable = "rejection_reasons"

func buildUpsertReasonQuery(key string, reason models.RejectionReason, expiresAt time.Time) (string, []any, error) {
	return psql.Insert(rejectionReasonsTable).
		Columns("session_key", "reason", "expires_at").
		Values(key, string(reason), expiresAt).
		Suffix("ON CONFLICT (session_key) DO UPDATE SET reason = EXCLUDED.reason, expires_at = EXCLUDED.expires_at").
		ToSql()
}

func buildTakeReasonQuery(key string) (string, []any, error) {
	return psql.Delete(rejectionReasonsTable).
		Where(sq.Eq{"session_key": key}).
		Suffix("RETURNING reason, expires_at").
		ToSql()
}

func buildPurgeReasonsQuery(now time.Time) (string, []any, error) {
	return psql.Delete(rejectionReasonsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
