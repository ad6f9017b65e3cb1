package repository

import (
	"context"

	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
	LinkPaymentSale(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkPaymentSaleParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	params, err := converter.PaymentToCreateParams(p)
	if err != nil {
		return err
	}
	if _, err := r.queries.CreatePayment(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, ev payment.Event) (bool, error) {
	modifiedAt := pgtype.Timestamptz{}
	if !ev.ModifiedAt.IsZero() {
		modifiedAt = pgconv.TimeToPgtype(ev.ModifiedAt)
	}

	n, err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		Status:     ev.Status.String(),
		ModifiedAt: modifiedAt,
		ID:         id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update payment status", err)
	}
	return n == 1, nil
}

func (r *PaymentRepository) LinkSale(ctx context.Context, tx sqlc.DBTX, paymentID, saleID uuid.UUID) error {
	err := r.queries.LinkPaymentSale(ctx, tx, sqlc.LinkPaymentSaleParams{
		SaleID: pgconv.UUIDToPgtype(saleID),
		ID:     paymentID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link sale to payment", err)
	}
	return nil
}
