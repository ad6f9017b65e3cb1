package device

import (
	"context"
	"log/slog"

	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"
)

type DispatchResult string

const (
	Sent         DispatchResult = "sent"
	NotConnected DispatchResult = "not_connected"
)

// Dispatcher sends unlock commands to connected controllers. Delivery is fire and forget;
// the controller's ack is only logged by the gateway.
type Dispatcher struct {
	registry *Registry
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDispatcher(registry *Registry, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		clock:    clk,
		logger:   logger,
	}
}

func (d *Dispatcher) SendUnlock(ctx context.Context, deviceID string, cellNumber int, correlationID string) (DispatchResult, error) {
	t, ok := d.registry.Lookup(deviceID)
	if !ok {
		d.logger.Info("unlock skipped, device offline", "device_id", deviceID, "cell", cellNumber, "cmd_id", correlationID)
		return NotConnected, nil
	}

	cmd := NewOpenCommand(correlationID, cellNumber, d.clock.Now().UnixMilli())
	if err := t.Send(ctx, cmd); err != nil {
		err = errs.WithHint(errs.Mark(err, errs.ErrDispatchFailed), "the controller did not take the command; retry the opening")
		return "", errs.Wrapf(err, "send unlock to %s cell %d", deviceID, cellNumber)
	}

	d.logger.Info("unlock sent", "device_id", deviceID, "cell", cellNumber, "cmd_id", correlationID)
	return Sent, nil
}
