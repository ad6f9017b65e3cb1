//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/retry"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() retry.Policy {
	return retry.Policy{Base: time.Millisecond, Cap: 2 * time.Millisecond, MaxRetries: 3}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, true},
		{"wrapped deadlock", errors.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "commit"), true},
		{"marked commit failure", errs.Mark(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, errTransactionCommit), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryTx(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization failures until commit", func(t *testing.T) {
		var seen []int
		err := retryTx(ctx, fastPolicy(), func(_ context.Context, attempt int) error {
			seen = append(seen, attempt)
			if attempt < 3 {
				return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("other errors are returned after one attempt", func(t *testing.T) {
		calls := 0
		cause := errs.New("cell not found")
		err := retryTx(ctx, fastPolicy(), func(context.Context, int) error {
			calls++
			return cause
		})

		assert.Equal(t, 1, calls)
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errMaxRetriesExceeded))
	})

	t.Run("marks the error once retries run out", func(t *testing.T) {
		calls := 0
		err := retryTx(ctx, fastPolicy(), func(context.Context, int) error {
			calls++
			return errs.Mark(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, errTransactionCommit)
		})

		assert.Equal(t, 4, calls)
		assert.True(t, errs.Is(err, errMaxRetriesExceeded))
		assert.True(t, errs.Is(err, errTransactionCommit))
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		calls := 0
		err := retryTx(cctx, retry.Policy{Base: time.Second, Cap: time.Second, MaxRetries: 5}, func(context.Context, int) error {
			calls++
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		})

		require.Error(t, err)
		assert.LessOrEqual(t, calls, 1)
	})
}
