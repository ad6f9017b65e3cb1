//go:build unit

package commands_test

import (
	"context"
	"testing"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocker(t *testing.T) {
	uow := newMemUoW()
	uc := commands.NewLockerUseCase(uow, clock.NewMockClock(t0), discardLogger())

	l, err := uc.CreateLocker(context.Background(), commands.CreateLockerRequest{
		Name:      " L1 ",
		Address:   "Khreshchatyk 1",
		CellCount: 12,
		DeviceID:  "D1",
	})

	require.NoError(t, err)
	assert.Equal(t, "L1", l.Name())
	for n := 1; n <= 12; n++ {
		c := uow.cell(cell.Key{LockerID: l.ID(), Number: n})
		require.NotNil(t, c, "cell %d", n)
		assert.Equal(t, cell.OccupancyVacant, c.Occupancy())
	}
	assert.Nil(t, uow.cell(cell.Key{LockerID: l.ID(), Number: 0}))
	assert.Nil(t, uow.cell(cell.Key{LockerID: l.ID(), Number: 13}))
}

func TestCreateLocker_Validation(t *testing.T) {
	uc := commands.NewLockerUseCase(newMemUoW(), clock.NewMockClock(t0), discardLogger())

	for _, req := range []commands.CreateLockerRequest{
		{Name: "", CellCount: 4},
		{Name: "L1", CellCount: 0},
		{Name: "L1", CellCount: 201},
	} {
		_, err := uc.CreateLocker(context.Background(), req)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "%+v", req)
	}
}

func TestCreateLocker_CellInsertFailureRollsBack(t *testing.T) {
	uow := newMemUoW()
	uow.failOn = "cells.create"
	uc := commands.NewLockerUseCase(uow, clock.NewMockClock(t0), discardLogger())

	_, err := uc.CreateLocker(context.Background(), commands.CreateLockerRequest{Name: "L1", CellCount: 3})

	require.Error(t, err)
	assert.Empty(t, uow.state.lockers)
}
