package payment

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/secret"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const internalInvoicePrefix = "int_"

// Internal covers in-house payment flows (cash desk, promo credit). Callbacks carry a
// hex HMAC-SHA256 of the raw body under the shared secret.
type Internal struct {
	secret      []byte
	redirectURL string
}

func NewInternal(cfg config.PaymentConfig) *Internal {
	return &Internal{
		secret:      []byte(cfg.InternalSecret),
		redirectURL: cfg.RedirectURL,
	}
}

func (p *Internal) Name() payment.Provider {
	return payment.ProviderInternal
}

type internalEvent struct {
	InvoiceID    string    `json:"invoiceId"`
	Status       string    `json:"status"`
	Amount       int64     `json:"amount"`
	ModifiedDate time.Time `json:"modifiedDate"`
}

func (p *Internal) ParseEvent(_ context.Context, body []byte, signature string) (payment.Event, error) {
	if len(p.secret) == 0 || !secret.VerifyHMAC(p.secret, body, strings.TrimSpace(signature)) {
		return payment.Event{}, errs.Wrap(errs.ErrUnauthenticated, "internal signature mismatch")
	}
	var ev internalEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return payment.Event{}, errs.Mark(errs.Wrap(err, "decode internal callback"), payment.ErrInvalidEvent)
	}
	return payment.NewEvent(payment.ProviderInternal, ev.InvoiceID, ev.Status, ev.Amount, ev.ModifiedDate)
}

// CreateInvoice issues the invoice locally; nothing leaves the process.
func (p *Internal) CreateInvoice(_ context.Context, req shared.InvoiceRequest) (shared.Invoice, error) {
	id := internalInvoicePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	page := p.redirectURL
	if u, err := url.Parse(p.redirectURL); err == nil {
		q := u.Query()
		q.Set("invoice", id)
		q.Set("order", req.OrderNumber)
		u.RawQuery = q.Encode()
		page = u.String()
	}
	return shared.Invoice{ID: id, PageURL: page}, nil
}

func (p *Internal) FetchStatus(_ context.Context, invoiceID string) (payment.Event, error) {
	return payment.Event{}, errs.Wrapf(errs.ErrStatusPollUnsupported, "invoice %s", invoiceID)
}

// Sign is used by in-house callers and tests to produce the X-Signature header.
func (p *Internal) Sign(body []byte) string {
	return secret.SignHMAC(p.secret, body)
}
