package repository

import (
	"context"

	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"
)

type SaleWriteQueries interface {
	CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) (sqlc.Sales, error)
}

type SaleRepository struct {
	queries SaleWriteQueries
	db      sqlc.DBTX
}

func NewSaleRepository(queries SaleWriteQueries, db sqlc.DBTX) *SaleRepository {
	return &SaleRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the sale unless one already exists for its payment.
func (r *SaleRepository) Create(ctx context.Context, tx sqlc.DBTX, s *order.Sale) (bool, error) {
	_, err := r.queries.CreateSale(ctx, tx, converter.SaleToCreateParams(s))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create sale", err)
	}
	return true, nil
}
