package payment

import (
	"strings"
	"time"

	"ortomat-backend/internal/pkg/errs"
)

var ErrInvalidEvent = errs.New("invalid payment event")

type Provider string

const (
	ProviderAcquirer Provider = "monobank"
	ProviderInternal Provider = "internal"
)

func (p Provider) String() string {
	return string(p)
}

// Event is a provider status report, either pushed through a callback or pulled by a status poll.
type Event struct {
	Provider   Provider
	InvoiceID  string
	Status     Status
	Amount     int64
	ModifiedAt time.Time
}

func NewEvent(provider Provider, invoiceID, status string, amount int64, modifiedAt time.Time) (Event, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return Event{}, errs.Wrap(ErrInvalidEvent, "invoice id is empty")
	}
	st, err := NewStatus(status)
	if err != nil {
		return Event{}, errs.Wrapf(err, "invoice %s", invoiceID)
	}
	return Event{
		Provider:   provider,
		InvoiceID:  invoiceID,
		Status:     st,
		Amount:     amount,
		ModifiedAt: modifiedAt,
	}, nil
}
