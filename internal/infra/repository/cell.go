package repository

import (
	"context"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/infra/repository/converter"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/pgconv"
)

type CellWriteQueries interface {
	CreateCellsForLocker(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCellsForLockerParams) (int64, error)
	GetCellView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCellViewParams) (sqlc.GetCellViewRow, error)
	DispenseCell(ctx context.Context, db sqlc.DBTX, arg sqlc.DispenseCellParams) (sqlc.Cells, error)
	PrepareCellRefill(ctx context.Context, db sqlc.DBTX, arg sqlc.PrepareCellRefillParams) (sqlc.Cells, error)
	FillCell(ctx context.Context, db sqlc.DBTX, arg sqlc.FillCellParams) (sqlc.Cells, error)
	AssignCellProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignCellProductParams) (sqlc.Cells, error)
	UnassignCell(ctx context.Context, db sqlc.DBTX, arg sqlc.UnassignCellParams) (sqlc.Cells, error)
}

type CellRepository struct {
	queries CellWriteQueries
	db      sqlc.DBTX
}

func NewCellRepository(queries CellWriteQueries, db sqlc.DBTX) *CellRepository {
	return &CellRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CellRepository) CreateForLocker(ctx context.Context, tx sqlc.DBTX, l *locker.Locker) (int64, error) {
	n, err := r.queries.CreateCellsForLocker(ctx, tx, sqlc.CreateCellsForLockerParams{
		LockerID:  l.ID(),
		UpdatedAt: pgconv.TimeToPgtype(l.CreatedAt()),
		CellCount: int32(l.CellCount()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create cells", err)
	}
	return n, nil
}

// Apply executes the transition as a single UPDATE keyed by (locker, number).
// Each statement mirrors cell.Cell.Apply.
func (r *CellRepository) Apply(ctx context.Context, tx sqlc.DBTX, key cell.Key, t cell.Transition) (*cell.Cell, error) {
	number := int32(key.Number)
	at := pgconv.TimeToPgtype(t.At)

	var (
		row sqlc.Cells
		err error
	)
	switch t.Kind {
	case cell.TransitionDispense:
		row, err = r.queries.DispenseCell(ctx, tx, sqlc.DispenseCellParams{UpdatedAt: at, LockerID: key.LockerID, Number: number})
	case cell.TransitionPrepareRefill:
		row, err = r.queries.PrepareCellRefill(ctx, tx, sqlc.PrepareCellRefillParams{UpdatedAt: at, LockerID: key.LockerID, Number: number})
	case cell.TransitionFill:
		row, err = r.queries.FillCell(ctx, tx, sqlc.FillCellParams{
			RestockedAt: at,
			RestockedBy: pgconv.UUIDToPgtype(t.CourierID),
			LockerID:    key.LockerID,
			Number:      number,
		})
		if pgconv.IsNoRows(err) {
			return nil, r.explainFillMiss(ctx, tx, key, err)
		}
	case cell.TransitionAssign:
		row, err = r.queries.AssignCellProduct(ctx, tx, sqlc.AssignCellProductParams{
			ProductID: pgconv.UUIDToPgtype(t.ProductID),
			UpdatedAt: at,
			LockerID:  key.LockerID,
			Number:    number,
		})
	case cell.TransitionUnassign:
		row, err = r.queries.UnassignCell(ctx, tx, sqlc.UnassignCellParams{UpdatedAt: at, LockerID: key.LockerID, Number: number})
	default:
		return nil, errs.Wrapf(cell.ErrUnknownTransition, "%q", t.Kind)
	}

	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cell not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to apply cell transition "+string(t.Kind), err)
	}
	return converter.CellFromRow(row)
}

// A fill matches no row either because the cell is missing or because it has no product.
func (r *CellRepository) explainFillMiss(ctx context.Context, tx sqlc.DBTX, key cell.Key, missErr error) error {
	_, err := r.queries.GetCellView(ctx, tx, sqlc.GetCellViewParams{LockerID: key.LockerID, Number: int32(key.Number)})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("cell not found", missErr, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to load cell after fill miss", err)
	}
	return errs.Wrapf(cell.ErrNoProduct, "fill cell %d", key.Number)
}
