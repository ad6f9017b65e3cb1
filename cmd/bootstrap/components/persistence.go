package components

import (
	"ortomat-backend/internal/infra/readstore"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/infra/uow"
	"ortomat-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Locker
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LockerViewQueries)),
		),
		fx.Annotate(
			readstore.NewLockerReadStore,
			fx.As(new(queries.LockerReadStore)),
		),
		// AuditLog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AuditLogViewQueries)),
		),
		fx.Annotate(
			readstore.NewAuditLogReadStore,
			fx.As(new(queries.AuditLogReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
