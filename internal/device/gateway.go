package device

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"

	"github.com/gorilla/websocket"
)

const (
	tokenQueryParam = "token"
	tokenHeader     = "X-Device-Token"
	maxFrameSize    = 16 << 10
)

var ErrHandshake = errs.New("device handshake failed")

// Gateway accepts controller connections and runs one receive loop per connection.
type Gateway struct {
	registry *Registry
	cfg      config.DeviceConfig
	clock    clock.Clock
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewGateway(registry *Registry, cfg config.DeviceConfig, clk clock.Clock, logger *slog.Logger) *Gateway {
	return &Gateway{
		registry: registry,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: cfg.HandshakeTimeout,
			// controllers are not browsers; origin is meaningless for them
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(tokenQueryParam)
	if token == "" {
		token = r.Header.Get(tokenHeader)
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		g.logger.Warn("device upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)

	t := newWSTransport(conn, g.cfg.WriteTimeout)
	defer t.Close()

	deviceID, err := g.handshake(r.Context(), t, token)
	if err != nil {
		g.logger.Warn("device rejected", "remote", r.RemoteAddr, "error", err)
		t.closeWith(websocket.ClosePolicyViolation, "unauthorized")
		return
	}
	defer g.registry.Disconnect(t)

	stopPing := g.startPing(t)
	defer stopPing()

	g.receiveLoop(t, deviceID)
}

func (g *Gateway) handshake(ctx context.Context, t *wsTransport, token string) (string, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(g.cfg.HandshakeTimeout)); err != nil {
		return "", errs.Wrap(err, "set handshake deadline")
	}

	_, data, err := t.conn.ReadMessage()
	if err != nil {
		return "", errs.Wrap(errs.Mark(err, ErrHandshake), "read hello")
	}
	msg, err := Decode(data)
	if err != nil {
		return "", errs.Mark(err, ErrHandshake)
	}
	hello, ok := msg.(Hello)
	if !ok {
		return "", errs.Wrapf(ErrHandshake, "expected hello, got %q", msg.Type())
	}

	if err := g.registry.Connect(hello.DeviceID, token, t); err != nil {
		return "", err
	}

	if err := t.Send(ctx, NewWelcome(g.clock.Now().UnixMilli())); err != nil {
		g.registry.Disconnect(t)
		return "", errs.Wrap(err, "send welcome")
	}
	return hello.DeviceID, nil
}

func (g *Gateway) receiveLoop(t *wsTransport, deviceID string) {
	idle := g.idleTimeout()
	t.conn.SetPongHandler(func(string) error {
		return t.conn.SetReadDeadline(time.Now().Add(idle))
	})

	for {
		if err := t.conn.SetReadDeadline(time.Now().Add(idle)); err != nil {
			return
		}
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("device connection lost", "device_id", deviceID, "error", err)
			}
			return
		}

		msg, err := Decode(data)
		if err != nil {
			g.logger.Warn("device sent malformed frame", "device_id", deviceID, "error", err)
			continue
		}

		switch m := msg.(type) {
		case Diag:
			g.registry.RecordDiagnostic(deviceID, m.UptimeMs, m.WifiRSSI)
		case Ack:
			g.logger.Info("unlock acknowledged", "device_id", deviceID, "cmd_id", m.CmdID)
		case State:
			g.logger.Info("cell state reported", "device_id", deviceID, "cell", m.Cell, "result", m.Result, "sensor", m.Sensor)
		case Hello:
			g.logger.Debug("repeated hello ignored", "device_id", deviceID)
		default:
			g.logger.Warn("unknown device message", "device_id", deviceID, "type", string(m.Type()))
		}
	}
}

func (g *Gateway) idleTimeout() time.Duration {
	if g.cfg.PingInterval <= 0 {
		return time.Minute
	}
	return 2 * g.cfg.PingInterval
}

func (g *Gateway) startPing(t *wsTransport) func() {
	if g.cfg.PingInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(g.cfg.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := t.ping(); err != nil {
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// wsTransport serializes writes; gorilla connections allow one concurrent writer.
type wsTransport struct {
	conn         *websocket.Conn
	writeTimeout time.Duration

	mu        sync.Mutex
	closeOnce sync.Once
}

func newWSTransport(conn *websocket.Conn, writeTimeout time.Duration) *wsTransport {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &wsTransport{conn: conn, writeTimeout: writeTimeout}
}

func (t *wsTransport) Send(ctx context.Context, msg any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	deadline := time.Now().Add(t.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return errs.Wrap(err, "set write deadline")
	}
	if err := t.conn.WriteJSON(msg); err != nil {
		return errs.Wrap(err, "write frame")
	}
	return nil
}

func (t *wsTransport) ping() error {
	return t.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(t.writeTimeout))
}

func (t *wsTransport) closeWith(code int, text string) {
	_ = t.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(t.writeTimeout))
	_ = t.Close()
}

func (t *wsTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		err = t.conn.Close()
	})
	return err
}
