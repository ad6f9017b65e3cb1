package device

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/secret"
)

// Transport is the write side of one controller connection.
// Implementations must be comparable; the registry keys sessions on transport identity.
type Transport interface {
	Send(ctx context.Context, msg any) error
	Close() error
}

// TokenVerifier decides whether a controller may register.
type TokenVerifier interface {
	Verify(token string) bool
}

type Diagnostic struct {
	UptimeMs   int64
	WifiRSSI   int
	ReportedAt time.Time
}

type Session struct {
	DeviceID    string
	ConnectedAt time.Time
	Diagnostic  *Diagnostic
}

type session struct {
	deviceID    string
	transport   Transport
	connectedAt time.Time
	diagnostic  *Diagnostic
}

func (s *session) snapshot() Session {
	out := Session{DeviceID: s.deviceID, ConnectedAt: s.connectedAt}
	if s.diagnostic != nil {
		d := *s.diagnostic
		out.Diagnostic = &d
	}
	return out
}

// Registry tracks live controller sessions. It is process local and never persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session

	verifier TokenVerifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRegistry(verifier TokenVerifier, clk clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		verifier: verifier,
		clock:    clk,
		logger:   logger,
	}
}

// Connect registers t for deviceID. A previous session for the same id is replaced and its transport closed.
func (r *Registry) Connect(deviceID, token string, t Transport) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return errs.Wrap(errs.ErrUnauthenticated, "device id is empty")
	}
	if !r.verifier.Verify(token) {
		return errs.Wrapf(errs.ErrUnauthenticated, "device %s presented an unknown token", deviceID)
	}

	r.mu.Lock()
	prev := r.sessions[deviceID]
	r.sessions[deviceID] = &session{
		deviceID:    deviceID,
		transport:   t,
		connectedAt: r.clock.Now(),
	}
	r.mu.Unlock()

	if prev != nil && prev.transport != t {
		r.logger.Warn("device reconnected, replacing previous session", "device_id", deviceID)
		if err := prev.transport.Close(); err != nil {
			r.logger.Debug("closing replaced transport", "device_id", deviceID, "error", err)
		}
	} else {
		r.logger.Info("device connected", "device_id", deviceID)
	}
	return nil
}

// Disconnect removes the session owned by t. A transport whose session was already replaced is a no-op.
func (r *Registry) Disconnect(t Transport) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.transport == t {
			delete(r.sessions, id)
			r.logger.Info("device disconnected", "device_id", id)
			return id, true
		}
	}
	return "", false
}

// RecordDiagnostic is ignored for devices without a session.
func (r *Registry) RecordDiagnostic(deviceID string, uptimeMs int64, rssi int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[deviceID]
	if !ok {
		return
	}
	s.diagnostic = &Diagnostic{
		UptimeMs:   uptimeMs,
		WifiRSSI:   rssi,
		ReportedAt: r.clock.Now(),
	}
}

func (r *Registry) IsOnline(deviceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[deviceID]
	return ok
}

// ListOnline returns sessions ordered by device id.
func (r *Registry) ListOnline() []Session {
	r.mu.RLock()
	out := make([]Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.snapshot())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })
	return out
}

func (r *Registry) GetDiagnostic(deviceID string) (Diagnostic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[deviceID]
	if !ok || s.diagnostic == nil {
		return Diagnostic{}, false
	}
	return *s.diagnostic, true
}

func (r *Registry) Lookup(deviceID string) (Transport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[deviceID]
	if !ok {
		return nil, false
	}
	return s.transport, true
}

// HashAllowList accepts tokens matching any of the configured bcrypt hashes.
type HashAllowList struct {
	hashes []string
}

func NewHashAllowList(hashes []string) *HashAllowList {
	cleaned := make([]string, 0, len(hashes))
	for _, h := range hashes {
		if h = strings.TrimSpace(h); h != "" {
			cleaned = append(cleaned, h)
		}
	}
	return &HashAllowList{hashes: cleaned}
}

func (l *HashAllowList) Verify(token string) bool {
	if token == "" {
		return false
	}
	for _, h := range l.hashes {
		if secret.CompareToken(h, token) == nil {
			return true
		}
	}
	return false
}
