package shared

import (
	"context"
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/domain/referrer"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lockers() LockerRepository
	Cells() CellRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Sales() SaleRepository
	Referrers() ReferrerRepository
	AuditLogs() AuditLogRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads return KindNotFound repository errors for missing rows.
type CommandReads interface {
	CellByLocation(ctx context.Context, key cell.Key) (*CellSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	PaymentByInvoice(ctx context.Context, provider payment.Provider, invoiceID string) (*payment.Payment, error)
	LatestPaymentByInvoiceID(ctx context.Context, invoiceID string) (*payment.Payment, error)
	SaleByPaymentID(ctx context.Context, paymentID uuid.UUID) (*order.Sale, error)
	ReferrerByCode(ctx context.Context, code string) (*referrer.Referrer, error)
	ReferrerByID(ctx context.Context, id uuid.UUID) (*referrer.Referrer, error)
}

type LockerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *locker.Locker) error
}

type CellRepository interface {
	CreateForLocker(ctx context.Context, tx sqlc.DBTX, l *locker.Locker) (int64, error)
	// Apply runs t as one conditional UPDATE and returns the resulting row.
	Apply(ctx context.Context, tx sqlc.DBTX, key cell.Key, t cell.Transition) (*cell.Cell, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	// Complete and Fail only move pending orders; false means another writer got there first.
	Complete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
	Fail(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	// UpdateStatus returns false when a newer provider report was already stored.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, ev payment.Event) (bool, error)
	LinkSale(ctx context.Context, tx sqlc.DBTX, paymentID, saleID uuid.UUID) error
}

type SaleRepository interface {
	// Create returns false when a sale already exists for the payment.
	Create(ctx context.Context, tx sqlc.DBTX, s *order.Sale) (bool, error)
}

type ReferrerRepository interface {
	RecordSale(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, c order.Commission) error
}

type AuditLogRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, entry AuditEntry) error
}
