//go:build unit

package device_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"ortomat-backend/internal/device"
)

type tokenSet map[string]bool

func (s tokenSet) Verify(token string) bool { return s[token] }

type fakeTransport struct {
	mu      sync.Mutex
	sent    []any
	closed  bool
	sendErr error
}

func (f *fakeTransport) Send(_ context.Context, msg any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) Sent() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.sent...)
}

func (f *fakeTransport) IsClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

var _ device.Transport = (*fakeTransport)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
