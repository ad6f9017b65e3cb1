//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// products inserted by SeedReferenceData
var (
	SeedProductID  = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	SeedProduct2ID = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
)

func CreateTestProduct(t *testing.T, db DBLike, name string, price int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, price, is_active) VALUES ($1, $2, $3, true)", id, name, price)
	require.NoError(t, err)
	return id
}

// CreateTestReferrer inserts a referrer; a nil rate falls back to the configured default.
func CreateTestReferrer(t *testing.T, db DBLike, code, chatID string, rate *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO referrers (id, code, name, notify_chat_id, commission_rate) VALUES ($1, $2, $3, $4, $5::numeric)",
		id, code, "Referrer "+code, chatID, rate)
	require.NoError(t, err)
	return id
}

// StockCell assigns productID to the cell and marks it stocked.
func StockCell(t *testing.T, db DBLike, lockerID uuid.UUID, number int, productID uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(context.Background(), `
		UPDATE cells
		SET product_id = $3, occupancy = 'stocked', last_restocked_at = now(), updated_at = now()
		WHERE locker_id = $1 AND number = $2`, lockerID, number, productID)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "cell %s/%d not found", lockerID, number)
}

func CellOccupancy(t *testing.T, db DBLike, lockerID uuid.UUID, number int) string {
	t.Helper()

	var occ string
	err := db.QueryRow(context.Background(),
		"SELECT occupancy FROM cells WHERE locker_id = $1 AND number = $2", lockerID, number).Scan(&occ)
	require.NoError(t, err)
	return occ
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name, price) VALUES
		    ('00000000-0000-0000-0000-0000000000a1', 'Ibuprofen 200mg', 4500),
		    ('00000000-0000-0000-0000-0000000000a2', 'Bandage roll', 2500)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
