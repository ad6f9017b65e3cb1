package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy waits min(Base*2^n, Cap) between attempts and gives up after MaxRetries retries.
// Jitter spreads each wait by up to that fraction in either direction.
type Policy struct {
	Base       time.Duration
	Cap        time.Duration
	MaxRetries uint64
	Jitter     float64
}

// Permanent stops the retry loop and returns err as is.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.Base
	b.MaxInterval = p.Cap
	b.Multiplier = 2
	b.RandomizationFactor = p.Jitter
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// Do runs fn until it succeeds, returns a Permanent error, the retries run out or ctx is done.
// onRetry may be nil.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error, onRetry func(err error, wait time.Duration)) error {
	op := func() error {
		return fn(ctx)
	}
	if onRetry == nil {
		return backoff.Retry(op, p.backOff(ctx))
	}
	return backoff.RetryNotify(op, p.backOff(ctx), onRetry)
}

// Delays lists the waits the policy produces without jitter.
func (p Policy) Delays() []time.Duration {
	p.Jitter = 0
	b := p.backOff(context.Background())
	b.Reset()
	var out []time.Duration
	for {
		d := b.NextBackOff()
		if d == backoff.Stop {
			return out
		}
		out = append(out, d)
	}
}
