package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether another attempt makes sense.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// transientCodes lists the SQLSTATE codes after which a submission write or
// a reason lookup is repeated: lost connections, serialization conflicts
// between concurrent submits and a server still starting up.
var transientCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [Retryable] only for driver errors whose code is in
// transientCodes. Constraint violations such as a duplicate media name are
// final: repeating the insert would fail the same way.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a single SQLSTATE code.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := transientCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
