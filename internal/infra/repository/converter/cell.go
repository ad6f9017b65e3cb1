package converter

import (
	"ortomat-backend/internal/domain/cell"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/pgconv"
)

func CellFromRow(row sqlc.Cells) (*cell.Cell, error) {
	occ, err := cell.NewOccupancy(row.Occupancy)
	if err != nil {
		return nil, errs.Wrapf(err, "cell %s/%d", row.LockerID, row.Number)
	}
	return cell.ReconstructCell(
		row.LockerID,
		int(row.Number),
		pgconv.UUIDPtrFromPgtype(row.ProductID),
		occ,
		pgconv.TimePtrFromPgtype(row.LastRestockedAt),
		pgconv.UUIDPtrFromPgtype(row.RestockedBy),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// CellViewRow flattens both variants of the joined cell query.
type CellViewRow struct {
	Cells       sqlc.Cells
	LockerName  string
	DeviceID    string
	ProductName string
	Price       int64
}

func CellViewFromGetRow(row sqlc.GetCellViewRow) CellViewRow {
	return CellViewRow{
		Cells: sqlc.Cells{
			LockerID:        row.LockerID,
			Number:          row.Number,
			ProductID:       row.ProductID,
			Occupancy:       row.Occupancy,
			LastRestockedAt: row.LastRestockedAt,
			RestockedBy:     row.RestockedBy,
			UpdatedAt:       row.UpdatedAt,
		},
		LockerName:  row.LockerName,
		DeviceID:    row.DeviceID,
		ProductName: pgconv.StringFromPgtype(row.ProductName),
		Price:       pgconv.Int64FromPgtype(row.ProductPrice),
	}
}

func CellViewFromListRow(row sqlc.ListCellViewsByLockerRow) CellViewRow {
	return CellViewFromGetRow(sqlc.GetCellViewRow(row))
}
