package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name         string
		errs         []error
		wantAttempts int
		wantErr      error
	}{
		{
			name:         "success first time",
			errs:         []error{nil},
			wantAttempts: 1,
		},
		{
			name:         "transient then success",
			errs:         []error{pgError(pgerrcode.DeadlockDetected), nil},
			wantAttempts: 2,
		},
		{
			name:         "transient until exhausted",
			errs:         []error{pgError(pgerrcode.ConnectionFailure), pgError(pgerrcode.ConnectionFailure), pgError(pgerrcode.SerializationFailure)},
			wantAttempts: retryMaxRetries + 1,
			wantErr:      pgError(pgerrcode.SerializationFailure),
		},
		{
			name:         "constraint violation is final",
			errs:         []error{pgError(pgerrcode.UniqueViolation)},
			wantAttempts: 1,
			wantErr:      pgError(pgerrcode.UniqueViolation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)
			attempts := 0

			err := newDBFromSQL(db).withRetry(testContext(), func() error {
				err := tt.errs[attempts]
				attempts++
				return err
			})

			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, postgresError(tt.wantErr), postgresError(err))
		})
	}
}

func TestWithRetry_ContextCancelledBetweenAttempts(t *testing.T) {
	db, _ := newTestDB(t)
	ctx, cancel := context.WithCancel(testContext())
	transient := pgError(pgerrcode.ConnectionFailure)

	attempts := 0
	err := newDBFromSQL(db).withRetry(ctx, func() error {
		attempts++
		cancel()
		return transient
	})

	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.Is(err, transient))
}
