package repository

import (
	"context"

	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"
)

type LockerWriteQueries interface {
	CreateLocker(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLockerParams) (sqlc.Lockers, error)
}

type LockerRepository struct {
	queries LockerWriteQueries
	db      sqlc.DBTX
}

func NewLockerRepository(queries LockerWriteQueries, db sqlc.DBTX) *LockerRepository {
	return &LockerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LockerRepository) Create(ctx context.Context, tx sqlc.DBTX, l *locker.Locker) error {
	_, err := r.queries.CreateLocker(ctx, tx, sqlc.CreateLockerParams{
		ID:        l.ID(),
		Name:      l.Name(),
		Address:   l.Address(),
		CellCount: int32(l.CellCount()),
		Status:    string(l.Status()),
		DeviceID:  l.DeviceID(),
		CreatedAt: pgconv.TimeToPgtype(l.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create locker", err)
	}
	return nil
}
