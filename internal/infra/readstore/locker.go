package readstore

import (
	"context"

	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"
	"ortomat-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type LockerViewQueries interface {
	GetLockerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Lockers, error)
	ListLockers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Lockers, error)
	ListCellViewsByLocker(ctx context.Context, db sqlc.DBTX, lockerID uuid.UUID) ([]sqlc.ListCellViewsByLockerRow, error)
}

type LockerReadStore struct {
	queries LockerViewQueries
	db      sqlc.DBTX
}

func NewLockerReadStore(queries LockerViewQueries, db sqlc.DBTX) *LockerReadStore {
	return &LockerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LockerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LockerView, error) {
	row, err := r.queries.GetLockerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("locker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get locker by id", err)
	}
	return toLockerView(row), nil
}

func (r *LockerReadStore) List(ctx context.Context) ([]*queries.LockerView, error) {
	rows, err := r.queries.ListLockers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lockers", err)
	}
	out := make([]*queries.LockerView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLockerView(row))
	}
	return out, nil
}

func (r *LockerReadStore) ListCells(ctx context.Context, lockerID uuid.UUID) ([]*queries.CellView, error) {
	rows, err := r.queries.ListCellViewsByLocker(ctx, r.db, lockerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cells", err)
	}
	out := make([]*queries.CellView, 0, len(rows))
	for _, row := range rows {
		v := converter.CellViewFromListRow(row)
		c, err := converter.CellFromRow(v.Cells)
		if err != nil {
			return nil, err
		}
		out = append(out, &queries.CellView{
			LockerID:        c.LockerID(),
			Number:          c.Number(),
			Occupancy:       c.Occupancy().String(),
			Purchasable:     c.IsPurchasable(),
			ProductID:       c.ProductID(),
			ProductName:     v.ProductName,
			ProductPrice:    v.Price,
			LastRestockedAt: c.LastRestockedAt(),
			UpdatedAt:       c.UpdatedAt(),
		})
	}
	return out, nil
}

func toLockerView(row sqlc.Lockers) *queries.LockerView {
	return &queries.LockerView{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		CellCount: int(row.CellCount),
		Status:    row.Status,
		DeviceID:  row.DeviceID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
