package readstore

import (
	"context"
	"encoding/json"

	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/pgconv"
	"ortomat-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditLogViewQueries interface {
	ListAuditLogsByCell(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditLogsByCellParams) ([]sqlc.AuditLogs, error)
}

type AuditLogReadStore struct {
	queries AuditLogViewQueries
	db      sqlc.DBTX
}

func NewAuditLogReadStore(queries AuditLogViewQueries, db sqlc.DBTX) *AuditLogReadStore {
	return &AuditLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogReadStore) ListByCell(ctx context.Context, lockerID uuid.UUID, number int, after *queries.Position, limit int32) ([]*queries.AuditLogView, error) {
	params := sqlc.ListAuditLogsByCellParams{
		LockerID:   lockerID,
		CellNumber: int32(number),
		RowLimit:   limit,
	}
	if after != nil {
		params.AfterAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.ListAuditLogsByCell(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs", err)
	}

	out := make([]*queries.AuditLogView, 0, len(rows))
	for _, row := range rows {
		details := map[string]any{}
		if len(row.Details) > 0 {
			// a corrupt blob should not hide the rest of the history
			_ = json.Unmarshal(row.Details, &details)
		}
		out = append(out, &queries.AuditLogView{
			ID:        row.ID,
			Action:    row.Action,
			Reason:    row.Reason,
			Mode:      row.Mode,
			Details:   details,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
