package commands

import (
	"context"
	"log/slog"

	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/shared"
)

type CreateLockerRequest struct {
	Name      string
	Address   string
	CellCount int
	DeviceID  string
}

type LockerCommands interface {
	CreateLocker(ctx context.Context, req CreateLockerRequest) (*locker.Locker, error)
}

type lockerUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewLockerUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) LockerCommands {
	return &lockerUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *lockerUseCaseImpl) CreateLocker(ctx context.Context, req CreateLockerRequest) (*locker.Locker, error) {
	l, err := locker.NewLocker(req.Name, req.Address, req.CellCount, req.DeviceID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Lockers().Create(ctx, tx.DB(), l); derr != nil {
			return derr
		}
		n, derr := tx.Cells().CreateForLocker(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}
		if n != int64(l.CellCount()) {
			return errs.Newf("created %d cells, want %d", n, l.CellCount())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("locker created", "locker_id", l.ID(), "cells", l.CellCount(), "device_id", l.DeviceID())
	return l, nil
}
