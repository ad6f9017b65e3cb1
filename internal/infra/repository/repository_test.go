//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errConnLost = errors.New("connection lost")

type MockSaleWriteQueries struct {
	mock.Mock
}

func (m *MockSaleWriteQueries) CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) (sqlc.Sales, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Sales), args.Error(1)
}

type MockCellWriteQueries struct {
	mock.Mock
}

func (m *MockCellWriteQueries) CreateCellsForLocker(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCellsForLockerParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCellWriteQueries) GetCellView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCellViewParams) (sqlc.GetCellViewRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetCellViewRow), args.Error(1)
}

func (m *MockCellWriteQueries) DispenseCell(ctx context.Context, db sqlc.DBTX, arg sqlc.DispenseCellParams) (sqlc.Cells, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Cells), args.Error(1)
}

func (m *MockCellWriteQueries) PrepareCellRefill(ctx context.Context, db sqlc.DBTX, arg sqlc.PrepareCellRefillParams) (sqlc.Cells, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Cells), args.Error(1)
}

func (m *MockCellWriteQueries) FillCell(ctx context.Context, db sqlc.DBTX, arg sqlc.FillCellParams) (sqlc.Cells, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Cells), args.Error(1)
}

func (m *MockCellWriteQueries) AssignCellProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignCellProductParams) (sqlc.Cells, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Cells), args.Error(1)
}

func (m *MockCellWriteQueries) UnassignCell(ctx context.Context, db sqlc.DBTX, arg sqlc.UnassignCellParams) (sqlc.Cells, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Cells), args.Error(1)
}

func newSale(t *testing.T) *order.Sale {
	t.Helper()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(uuid.New(), uuid.New(), 3, 4500, "", now)
	require.NoError(t, err)
	return order.NewSale(o, uuid.New(), nil, order.Commission{}, now)
}

func TestSaleRepository_Create(t *testing.T) {
	tests := []struct {
		name        string
		mockErr     error
		wantCreated bool
		wantErr     bool
	}{
		{name: "inserted", wantCreated: true},
		{name: "conflict on payment id", mockErr: pgx.ErrNoRows, wantCreated: false},
		{name: "database failure", mockErr: errConnLost, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockSaleWriteQueries)
			s := newSale(t)
			q.On("CreateSale", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateSaleParams) bool {
				return p.PaymentID == s.PaymentID() && p.Amount == 4500 && p.CellNumber == 3
			})).Return(sqlc.Sales{}, tt.mockErr)

			repo := NewSaleRepository(q, nil)
			created, err := repo.Create(context.Background(), nil, s)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			q.AssertExpectations(t)
		})
	}
}

func TestCellRepository_Apply(t *testing.T) {
	lockerID := uuid.New()
	key := cell.Key{LockerID: lockerID, Number: 2}
	productID := uuid.New()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	row := func(occupancy string) sqlc.Cells {
		return sqlc.Cells{
			LockerID:  lockerID,
			Number:    2,
			ProductID: pgconv.UUIDToPgtype(productID),
			Occupancy: occupancy,
			UpdatedAt: pgconv.TimeToPgtype(at),
		}
	}

	t.Run("dispense", func(t *testing.T) {
		q := new(MockCellWriteQueries)
		q.On("DispenseCell", mock.Anything, mock.Anything, sqlc.DispenseCellParams{
			UpdatedAt: pgconv.TimeToPgtype(at), LockerID: lockerID, Number: 2,
		}).Return(row(string(cell.OccupancyAssignedEmpty)), nil)

		c, err := NewCellRepository(q, nil).Apply(context.Background(), nil, key, cell.Dispense(at))

		require.NoError(t, err)
		assert.Equal(t, cell.OccupancyAssignedEmpty, c.Occupancy())
		q.AssertExpectations(t)
	})

	t.Run("missing cell is not found", func(t *testing.T) {
		q := new(MockCellWriteQueries)
		q.On("UnassignCell", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Cells{}, pgx.ErrNoRows)

		_, err := NewCellRepository(q, nil).Apply(context.Background(), nil, key, cell.Unassign(at))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("fill without product", func(t *testing.T) {
		q := new(MockCellWriteQueries)
		q.On("FillCell", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Cells{}, pgx.ErrNoRows)
		q.On("GetCellView", mock.Anything, mock.Anything, sqlc.GetCellViewParams{LockerID: lockerID, Number: 2}).
			Return(sqlc.GetCellViewRow{}, nil)

		_, err := NewCellRepository(q, nil).Apply(context.Background(), nil, key, cell.Fill(uuid.New(), at))

		require.Error(t, err)
		assert.True(t, errs.Is(err, cell.ErrNoProduct))
		q.AssertExpectations(t)
	})

	t.Run("fill on missing cell", func(t *testing.T) {
		q := new(MockCellWriteQueries)
		q.On("FillCell", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Cells{}, pgx.ErrNoRows)
		q.On("GetCellView", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.GetCellViewRow{}, pgx.ErrNoRows)

		_, err := NewCellRepository(q, nil).Apply(context.Background(), nil, key, cell.Fill(uuid.New(), at))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown transition", func(t *testing.T) {
		q := new(MockCellWriteQueries)

		_, err := NewCellRepository(q, nil).Apply(context.Background(), nil, key, cell.Transition{Kind: "teleport", At: at})

		require.Error(t, err)
		assert.True(t, errs.Is(err, cell.ErrUnknownTransition))
		q.AssertNotCalled(t, "DispenseCell", mock.Anything, mock.Anything, mock.Anything)
	})
}
