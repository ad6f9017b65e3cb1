package repository

import (
	"context"

	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReferrerWriteQueries interface {
	AddReferrerSale(ctx context.Context, db sqlc.DBTX, arg sqlc.AddReferrerSaleParams) error
}

type ReferrerRepository struct {
	queries ReferrerWriteQueries
	db      sqlc.DBTX
}

func NewReferrerRepository(queries ReferrerWriteQueries, db sqlc.DBTX) *ReferrerRepository {
	return &ReferrerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReferrerRepository) RecordSale(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, c order.Commission) error {
	err := r.queries.AddReferrerSale(ctx, tx, sqlc.AddReferrerSaleParams{
		Commission: c.Amount,
		Points:     c.Points,
		ID:         id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record referrer sale", err)
	}
	return nil
}
