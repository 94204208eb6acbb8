//go:build unit

package uow

import (
	"fmt"
	"testing"
	"time"

	"parking-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: fmt.Errorf("claim: %w", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}
	assert.True(t, shouldRetry(deadlock, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
	assert.False(t, shouldRetry(assert.AnError, 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+1)
	}
}

func TestIsTransactionFailure(t *testing.T) {
	assert.True(t, IsTransactionFailure(errs.Mark(assert.AnError, errTransactionCommit)))
	assert.True(t, IsTransactionFailure(errs.Mark(assert.AnError, errMaxRetriesExceeded)))
	assert.False(t, IsTransactionFailure(assert.AnError))
}
