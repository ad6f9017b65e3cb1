package payment

import (
	"strings"
	"time"

	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errs.New("payment amount must be positive")
	ErrInvalidInvoice = errs.New("invoice id is required")
)

type Payment struct {
	id         uuid.UUID
	provider   Provider
	invoiceID  string
	pageURL    string
	amount     int64
	status     Status
	details    Details
	modifiedAt *time.Time
	saleID     *uuid.UUID
	createdAt  time.Time
}

func NewPayment(provider Provider, invoiceID, pageURL string, amount int64, details Details, now time.Time) (*Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoice
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:        uuid.New(),
		provider:  provider,
		invoiceID: invoiceID,
		pageURL:   pageURL,
		amount:    amount,
		status:    StatusCreated,
		details:   details,
		createdAt: now,
	}, nil
}

func ReconstructPayment(
	id uuid.UUID,
	provider Provider,
	invoiceID, pageURL string,
	amount int64,
	status Status,
	details Details,
	modifiedAt *time.Time,
	saleID *uuid.UUID,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:         id,
		provider:   provider,
		invoiceID:  invoiceID,
		pageURL:    pageURL,
		amount:     amount,
		status:     status,
		details:    details,
		modifiedAt: modifiedAt,
		saleID:     saleID,
		createdAt:  createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) Provider() Provider     { return p.provider }
func (p *Payment) InvoiceID() string      { return p.invoiceID }
func (p *Payment) PageURL() string        { return p.pageURL }
func (p *Payment) Amount() int64          { return p.amount }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) Details() Details       { return p.details }
func (p *Payment) ModifiedAt() *time.Time { return p.modifiedAt }
func (p *Payment) SaleID() *uuid.UUID     { return p.saleID }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }

func (p *Payment) HasSale() bool {
	return p.saleID != nil
}

// IsStale reports whether ev was produced before the last event already applied.
// Events without a timestamp are never considered stale.
func (p *Payment) IsStale(ev Event) bool {
	if p.modifiedAt == nil || ev.ModifiedAt.IsZero() {
		return false
	}
	return ev.ModifiedAt.Before(*p.modifiedAt)
}
