package repository

import (
	"context"
	"encoding/json"

	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/pgconv"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditLogWriteQueries interface {
	CreateAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAuditLogParams) error
}

type AuditLogRepository struct {
	queries AuditLogWriteQueries
	db      sqlc.DBTX
}

func NewAuditLogRepository(queries AuditLogWriteQueries, db sqlc.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, tx sqlc.DBTX, entry shared.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return errs.Wrap(err, "marshal audit details")
	}

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	err = r.queries.CreateAuditLog(ctx, tx, sqlc.CreateAuditLogParams{
		ID:         id,
		Action:     string(entry.Action),
		LockerID:   entry.LockerID,
		CellNumber: int32(entry.CellNumber),
		Reason:     string(entry.Reason),
		Mode:       string(entry.Mode),
		Details:    payload,
		CreatedAt:  pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create audit log", err)
	}
	return nil
}
