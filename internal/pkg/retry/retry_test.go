//go:build unit

package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ortomat-backend/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() retry.Policy {
	return retry.Policy{Base: time.Millisecond, Cap: 4 * time.Millisecond, MaxRetries: 3}
}

func TestPolicy_Delays(t *testing.T) {
	p := retry.Policy{Base: 100 * time.Millisecond, Cap: 300 * time.Millisecond, MaxRetries: 4, Jitter: 0.5}

	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		300 * time.Millisecond,
	}, p.Delays())
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		var waits []time.Duration
		err := retry.Do(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return errors.New("down")
		}, func(_ error, wait time.Duration) {
			waits = append(waits, wait)
		})

		require.Error(t, err)
		assert.Equal(t, 4, calls)
		assert.Len(t, waits, 3)
	})

	t.Run("permanent error stops immediately", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("bad request")
		err := retry.Do(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return retry.Permanent(sentinel)
		}, nil)

		require.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops the loop", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		calls := 0
		err := retry.Do(cctx, retry.Policy{Base: time.Second, Cap: time.Second, MaxRetries: 5}, func(context.Context) error {
			calls++
			return errors.New("down")
		}, nil)

		require.Error(t, err)
		assert.LessOrEqual(t, calls, 1)
	})
}
