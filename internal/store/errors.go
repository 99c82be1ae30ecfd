package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSubmissionNotFound is returned when a submission row does not exist.
	ErrSubmissionNotFound = errors.New("submission was not found")

	// ErrMediaNotFound is returned when a media row does not exist.
	ErrMediaNotFound = errors.New("media was not found")

	// ErrSubmitterNotFound is returned when no submitter has the given id.
	ErrSubmitterNotFound = errors.New("submitter was not found")

	// ErrReasonNotFound is returned by reason stores when no unexpired reason
	// is recorded for a session key.
	ErrReasonNotFound = errors.New("rejection reason was not found")

	// ErrMediaNameTaken is returned when a rename collides with the unique
	// media name index.
	ErrMediaNameTaken = errors.New("media name is already taken")

	// ErrSubmissionNameTaken is returned when finalizing would give two
	// submissions the same name.
	ErrSubmissionNameTaken = errors.New("submission name is already taken")

	// ErrFileNotFound is returned by photo file storage when the stored file
	// is missing.
	ErrFileNotFound = errors.New("photo file was not found")

	// ErrNotSaved is returned when an INSERT completes without error but no
	// row comes back.
	ErrNotSaved = errors.New("row was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
