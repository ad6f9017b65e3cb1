package readstore

import (
	"context"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/domain/referrer"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReadQueries are the lookups the write side needs before deciding on a change.
type CommandReadQueries interface {
	GetCellView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCellViewParams) (sqlc.GetCellViewRow, error)
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetPaymentByInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByInvoiceParams) (sqlc.Payments, error)
	GetLatestPaymentByInvoiceID(ctx context.Context, db sqlc.DBTX, invoiceID string) (sqlc.Payments, error)
	GetSaleByPaymentID(ctx context.Context, db sqlc.DBTX, paymentID uuid.UUID) (sqlc.Sales, error)
	GetReferrerByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Referrers, error)
	GetReferrerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Referrers, error)
}

type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

func (r *CommandReadStore) CellByLocation(ctx context.Context, key cell.Key) (*shared.CellSnapshot, error) {
	row, err := r.queries.GetCellView(ctx, r.db, sqlc.GetCellViewParams{LockerID: key.LockerID, Number: int32(key.Number)})
	if err != nil {
		return nil, notFoundOr(err, "cell not found", "failed to get cell")
	}
	v := converter.CellViewFromGetRow(row)
	c, err := converter.CellFromRow(v.Cells)
	if err != nil {
		return nil, err
	}
	return &shared.CellSnapshot{
		Cell:         c,
		LockerName:   v.LockerName,
		DeviceID:     v.DeviceID,
		ProductName:  v.ProductName,
		ProductPrice: v.Price,
	}, nil
}

func (r *CommandReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		return nil, notFoundOr(err, "product not found", "failed to get product")
	}
	return &shared.ProductSnapshot{
		ID:       row.ID,
		Name:     row.Name,
		Price:    row.Price,
		IsActive: row.IsActive,
	}, nil
}

func (r *CommandReadStore) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, notFoundOr(err, "order not found", "failed to get order")
	}
	return converter.OrderFromRow(row)
}

func (r *CommandReadStore) PaymentByInvoice(ctx context.Context, provider payment.Provider, invoiceID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByInvoice(ctx, r.db, sqlc.GetPaymentByInvoiceParams{
		Provider:  provider.String(),
		InvoiceID: invoiceID,
	})
	if err != nil {
		return nil, notFoundOr(err, "payment not found", "failed to get payment by invoice")
	}
	return converter.PaymentFromRow(row)
}

func (r *CommandReadStore) LatestPaymentByInvoiceID(ctx context.Context, invoiceID string) (*payment.Payment, error) {
	row, err := r.queries.GetLatestPaymentByInvoiceID(ctx, r.db, invoiceID)
	if err != nil {
		return nil, notFoundOr(err, "payment not found", "failed to get payment by invoice id")
	}
	return converter.PaymentFromRow(row)
}

func (r *CommandReadStore) SaleByPaymentID(ctx context.Context, paymentID uuid.UUID) (*order.Sale, error) {
	row, err := r.queries.GetSaleByPaymentID(ctx, r.db, paymentID)
	if err != nil {
		return nil, notFoundOr(err, "sale not found", "failed to get sale by payment")
	}
	return converter.SaleFromRow(row)
}

func (r *CommandReadStore) ReferrerByCode(ctx context.Context, code string) (*referrer.Referrer, error) {
	row, err := r.queries.GetReferrerByCode(ctx, r.db, code)
	if err != nil {
		return nil, notFoundOr(err, "referrer not found", "failed to get referrer by code")
	}
	return converter.ReferrerFromRow(row)
}

func (r *CommandReadStore) ReferrerByID(ctx context.Context, id uuid.UUID) (*referrer.Referrer, error) {
	row, err := r.queries.GetReferrerByID(ctx, r.db, id)
	if err != nil {
		return nil, notFoundOr(err, "referrer not found", "failed to get referrer")
	}
	return converter.ReferrerFromRow(row)
}

func notFoundOr(err error, notFoundMsg, failMsg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failMsg, err)
}
