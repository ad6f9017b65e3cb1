package repository

import (
	"context"
	"time"

	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	CompleteOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteOrderParams) (int64, error)
	FailOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if _, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) Complete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.CompleteOrder(ctx, tx, sqlc.CompleteOrderParams{
		CompletedAt: pgconv.TimeToPgtype(at),
		ID:          id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete order", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) Fail(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.FailOrder(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to fail order", err)
	}
	return n == 1, nil
}
