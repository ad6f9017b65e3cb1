package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ortomat-backend/internal/infra/readstore"
	"ortomat-backend/internal/infra/repository"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/retry"
	"ortomat-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy retry.Policy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		policy: retry.Policy{
			Base:       100 * time.Millisecond,
			Cap:        time.Second,
			MaxRetries: 3,
			Jitter:     0.2,
		},
	}
}

// Within runs fn in a ReadCommitted transaction. Serialization failures and
// deadlocks are retried; every other error rolls back and is returned as is.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	return retryTx(ctx, u.policy, func(ctx context.Context, attempt int) error {
		return u.runOnce(ctx, opts, attempt, fn)
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.q, u.pool)
}

// retryTx reruns attempt while it fails with a retryable database error.
func retryTx(ctx context.Context, p retry.Policy, attempt func(ctx context.Context, attempt int) error) error {
	n := 0
	err := retry.Do(ctx, p, func(ctx context.Context) error {
		n++
		err := attempt(ctx, n)
		if err != nil && !isRetryableError(err) {
			return retry.Permanent(err)
		}
		return err
	}, func(err error, wait time.Duration) {
		slog.Warn("retrying transaction due to retryable error",
			"attempt", n,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	})
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries",
			"attempts", n,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// runOnce owns one transaction; rollback happens here so retries do not stack defers.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, attempt int, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		q:    u.q,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "attempt", attempt, "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	lockerRepo   shared.LockerRepository
	cellRepo     shared.CellRepository
	orderRepo    shared.OrderRepository
	paymentRepo  shared.PaymentRepository
	saleRepo     shared.SaleRepository
	referrerRepo shared.ReferrerRepository
	auditRepo    shared.AuditLogRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Lockers() shared.LockerRepository {
	if t.lockerRepo == nil {
		t.lockerRepo = repository.NewLockerRepository(t.q, t.dbtx)
	}
	return t.lockerRepo
}

func (t *pgTx) Cells() shared.CellRepository {
	if t.cellRepo == nil {
		t.cellRepo = repository.NewCellRepository(t.q, t.dbtx)
	}
	return t.cellRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Sales() shared.SaleRepository {
	if t.saleRepo == nil {
		t.saleRepo = repository.NewSaleRepository(t.q, t.dbtx)
	}
	return t.saleRepo
}

func (t *pgTx) Referrers() shared.ReferrerRepository {
	if t.referrerRepo == nil {
		t.referrerRepo = repository.NewReferrerRepository(t.q, t.dbtx)
	}
	return t.referrerRepo
}

func (t *pgTx) AuditLogs() shared.AuditLogRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditLogRepository(t.q, t.dbtx)
	}
	return t.auditRepo
}

// Reads sees the transaction's own uncommitted writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReadStore(t.q, t.dbtx)
	}
	return t.commandReads
}
