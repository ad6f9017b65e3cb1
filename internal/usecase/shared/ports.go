package shared

import (
	"context"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/domain/payment"

	"github.com/google/uuid"
)

type DevicePresence interface {
	IsOnline(deviceID string) bool
}

type Unlocker interface {
	SendUnlock(ctx context.Context, deviceID string, cellNumber int, correlationID string) (device.DispatchResult, error)
}

type InvoiceRequest struct {
	OrderID     uuid.UUID
	OrderNumber string
	Amount      int64
	Description string
}

type Invoice struct {
	ID      string
	PageURL string
}

// PaymentProvider is one acquiring backend.
type PaymentProvider interface {
	Name() payment.Provider
	// ParseEvent authenticates a callback body and decodes it; bad signatures yield errs.ErrUnauthenticated.
	ParseEvent(ctx context.Context, body []byte, signature string) (payment.Event, error)
	CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error)
	// FetchStatus polls the provider; timeouts and 5xx yield errs.ErrProviderUnavailable.
	FetchStatus(ctx context.Context, invoiceID string) (payment.Event, error)
}

type PaymentProviders interface {
	Get(name payment.Provider) (PaymentProvider, bool)
}

type SaleNotification struct {
	ChatID      string
	OrderNumber string
	ProductName string
	LockerName  string
	CellNumber  int
	Amount      int64
	Commission  int64
	Points      int64
}

// ReferrerNotifier delivers best effort messages; failures never affect the sale.
type ReferrerNotifier interface {
	NotifySale(ctx context.Context, n SaleNotification) error
}
