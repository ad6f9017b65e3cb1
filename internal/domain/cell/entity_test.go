//go:build unit

package cell_test

import (
	"testing"
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellApply(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()
	otherProduct := uuid.New()
	courierID := uuid.New()

	testCases := []struct {
		name        string
		cell        *builder.CellBuilder
		transition  cell.Transition
		want        cell.Occupancy
		wantProduct *uuid.UUID
		errIs       error
	}{
		{
			name:        "sale dispenses stocked cell",
			cell:        builder.NewCellBuilder().WithProduct(productID).Stocked(),
			transition:  cell.Dispense(at),
			want:        cell.OccupancyAssignedEmpty,
			wantProduct: &productID,
		},
		{
			name:       "dispense on vacant cell stays vacant",
			cell:       builder.NewCellBuilder(),
			transition: cell.Dispense(at),
			want:       cell.OccupancyVacant,
		},
		{
			name:        "refill opening keeps assignment",
			cell:        builder.NewCellBuilder().WithProduct(productID).Stocked(),
			transition:  cell.PrepareRefill(at),
			want:        cell.OccupancyAssignedEmpty,
			wantProduct: &productID,
		},
		{
			name:        "fill on assigned empty cell",
			cell:        builder.NewCellBuilder().WithProduct(productID).AssignedEmpty(),
			transition:  cell.Fill(courierID, at),
			want:        cell.OccupancyStocked,
			wantProduct: &productID,
		},
		{
			name:       "fill on vacant cell",
			cell:       builder.NewCellBuilder(),
			transition: cell.Fill(courierID, at),
			errIs:      cell.ErrNoProduct,
		},
		{
			name:        "assign on vacant cell",
			cell:        builder.NewCellBuilder(),
			transition:  cell.Assign(productID, at),
			want:        cell.OccupancyAssignedEmpty,
			wantProduct: &productID,
		},
		{
			name:        "reassign same product keeps stock",
			cell:        builder.NewCellBuilder().WithProduct(productID).Stocked(),
			transition:  cell.Assign(productID, at),
			want:        cell.OccupancyStocked,
			wantProduct: &productID,
		},
		{
			name:        "assign different product empties stocked cell",
			cell:        builder.NewCellBuilder().WithProduct(productID).Stocked(),
			transition:  cell.Assign(otherProduct, at),
			want:        cell.OccupancyAssignedEmpty,
			wantProduct: &otherProduct,
		},
		{
			name:       "unassign stocked cell",
			cell:       builder.NewCellBuilder().WithProduct(productID).Stocked(),
			transition: cell.Unassign(at),
			want:       cell.OccupancyVacant,
		},
		{
			name:       "unknown transition",
			cell:       builder.NewCellBuilder(),
			transition: cell.Transition{Kind: "teleport", At: at},
			errIs:      cell.ErrUnknownTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.cell.BuildDomain()
			beforeOcc := before.Occupancy()

			after, err := before.Apply(tc.transition)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				require.Nil(t, after)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.want, after.Occupancy())
			assert.Equal(t, tc.wantProduct, after.ProductID())
			assert.Equal(t, at, after.UpdatedAt())
			assert.Equal(t, beforeOcc, before.Occupancy(), "receiver must not change")
		})
	}

	t.Run("fill stamps restock time and courier", func(t *testing.T) {
		c := builder.NewCellBuilder().WithProduct(productID).AssignedEmpty().BuildDomain()

		after, err := c.Apply(cell.Fill(courierID, at))
		require.NoError(t, err)
		require.NotNil(t, after.LastRestockedAt())
		assert.Equal(t, at, *after.LastRestockedAt())
		require.NotNil(t, after.RestockedBy())
		assert.Equal(t, courierID, *after.RestockedBy())
		assert.True(t, after.IsPurchasable())
	})

	t.Run("refill opening clears restock time", func(t *testing.T) {
		c := builder.NewCellBuilder().WithProduct(productID).Stocked().BuildDomain()
		require.NotNil(t, c.LastRestockedAt())

		after, err := c.Apply(cell.PrepareRefill(at))
		require.NoError(t, err)
		assert.Nil(t, after.LastRestockedAt())
		assert.False(t, after.IsPurchasable())
	})
}

func TestNewVacantCell(t *testing.T) {
	now := time.Now()
	lockerID := uuid.New()

	_, err := cell.NewVacantCell(lockerID, 0, 10, now)
	require.ErrorIs(t, err, cell.ErrInvalidNumber)

	_, err = cell.NewVacantCell(lockerID, 11, 10, now)
	require.ErrorIs(t, err, cell.ErrInvalidNumber)

	c, err := cell.NewVacantCell(lockerID, 10, 10, now)
	require.NoError(t, err)
	assert.Equal(t, cell.Key{LockerID: lockerID, Number: 10}, c.Key())
	assert.Equal(t, cell.OccupancyVacant, c.Occupancy())
	assert.False(t, c.HasProduct())
}

func TestNewOccupancy(t *testing.T) {
	for _, s := range []string{"vacant", "assigned_empty", "stocked"} {
		o, err := cell.NewOccupancy(s)
		require.NoError(t, err)
		assert.Equal(t, s, o.String())
	}

	_, err := cell.NewOccupancy("empty")
	require.ErrorIs(t, err, cell.ErrInvalidOccupancy)
}
