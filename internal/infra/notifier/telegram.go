package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/retry"
	"ortomat-backend/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Telegram sends referrer sale messages through the Bot API.
type Telegram struct {
	baseURL string
	token   string
	http    *http.Client
	policy  retry.Policy
	logger  *slog.Logger
}

func NewTelegram(cfg config.NotifierConfig, logger *slog.Logger) *Telegram {
	return &Telegram{
		baseURL: cfg.BaseURL,
		token:   cfg.BotToken,
		http:    &http.Client{Timeout: cfg.Timeout},
		policy: retry.Policy{
			Base:       cfg.RetryBase,
			Cap:        cfg.RetryCap,
			MaxRetries: cfg.RetryMaxTries,
		},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (t *Telegram) NotifySale(ctx context.Context, n shared.SaleNotification) error {
	if n.ChatID == "" {
		return nil
	}
	body, err := json.Marshal(sendMessageRequest{ChatID: n.ChatID, Text: FormatSale(n)})
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	return retry.Do(ctx, t.policy, func(ctx context.Context) error {
		return t.send(ctx, body)
	}, func(err error, wait time.Duration) {
		t.logger.Warn("referrer notification failed, retrying",
			"order_number", n.OrderNumber,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	})
}

func (t *Telegram) send(ctx context.Context, body []byte) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(errs.Wrap(err, "build notification request"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send notification")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return errs.Newf("notification rejected with status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return retry.Permanent(errs.Newf("notification rejected with status %d", resp.StatusCode))
	}
	return nil
}

// FormatSale renders amounts in major units with two decimals.
func FormatSale(n shared.SaleNotification) string {
	return fmt.Sprintf(
		"New sale %s\n%s\n%s, cell %d\nAmount: %s\nCommission: %s\nPoints: %d",
		n.OrderNumber,
		n.ProductName,
		n.LockerName,
		n.CellNumber,
		decimal.New(n.Amount, -2).StringFixed(2),
		decimal.New(n.Commission, -2).StringFixed(2),
		n.Points,
	)
}

// Noop is used when notifications are disabled.
type Noop struct {
	logger *slog.Logger
}

func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) NotifySale(_ context.Context, s shared.SaleNotification) error {
	n.logger.Debug("referrer notification skipped", "order_number", s.OrderNumber)
	return nil
}

// New picks the implementation from configuration.
func New(cfg config.NotifierConfig, logger *slog.Logger) shared.ReferrerNotifier {
	if !cfg.Enabled || cfg.BotToken == "" {
		return NewNoop(logger)
	}
	t := NewTelegram(cfg, logger)
	logger.Info("referrer notifications enabled", "retry_delays", t.policy.Delays())
	return t
}
