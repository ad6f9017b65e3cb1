package commands

import (
	"context"
	"log/slog"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenCellRequest struct {
	// DeviceID overrides the controller bound to the locker; empty uses the locker's.
	DeviceID   string
	LockerID   uuid.UUID
	CellNumber int
	Reason     cell.Reason
}

type OpenCellResult struct {
	Success bool
	Mode    cell.Mode
	Note    string
	Cell    *cell.Cell
}

type CellCommands interface {
	OpenCell(ctx context.Context, req OpenCellRequest) (*OpenCellResult, error)
	MarkFilled(ctx context.Context, key cell.Key, courierID uuid.UUID) (*cell.Cell, error)
	AssignProduct(ctx context.Context, key cell.Key, productID, adminID uuid.UUID) (*cell.Cell, error)
	UnassignProduct(ctx context.Context, key cell.Key, adminID uuid.UUID) (*cell.Cell, error)
}

type cellUseCaseImpl struct {
	uow      shared.UnitOfWork
	presence shared.DevicePresence
	unlocker shared.Unlocker
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCellUseCase(
	uow shared.UnitOfWork,
	presence shared.DevicePresence,
	unlocker shared.Unlocker,
	clk clock.Clock,
	logger *slog.Logger,
) CellCommands {
	return &cellUseCaseImpl{
		uow:      uow,
		presence: presence,
		unlocker: unlocker,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *cellUseCaseImpl) OpenCell(ctx context.Context, req OpenCellRequest) (*OpenCellResult, error) {
	if req.Reason == nil {
		return nil, errs.Wrap(errs.ErrDomainValidation, "opening reason is required")
	}
	key := cell.Key{LockerID: req.LockerID, Number: req.CellNumber}

	snap, err := uc.uow.CommandReads().CellByLocation(ctx, key)
	if err != nil {
		return nil, classifyCellErr(err, key)
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = snap.DeviceID
	}

	now := uc.clock.Now()
	correlationID := req.Reason.CorrelationID(now)
	mode := cell.ModeDemo
	if deviceID != "" && uc.presence.IsOnline(deviceID) {
		mode = cell.ModeProduction
	}

	if mode == cell.ModeProduction {
		res, err := uc.unlocker.SendUnlock(ctx, deviceID, key.Number, correlationID)
		if err != nil {
			return nil, errs.Wrapf(err, "unlock cell %d on %s", key.Number, deviceID)
		}
		if res == device.NotConnected {
			// the controller dropped between the presence check and the write
			uc.logger.Warn("controller went offline before unlock, continuing in demo mode",
				"device_id", deviceID, "cell", key.Number, "correlation_id", correlationID)
			mode = cell.ModeDemo
		}
	}

	after := snap.Cell
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if t, ok := cell.TransitionFor(req.Reason, now); ok {
			updated, derr := tx.Cells().Apply(ctx, tx.DB(), key, t)
			if derr != nil {
				return classifyCellErr(derr, key)
			}
			after = updated
		}

		details := req.Reason.Metadata()
		details["correlation_id"] = correlationID
		details["device_id"] = deviceID
		details["locker_name"] = snap.LockerName
		details["product_name"] = snap.ProductName
		details["occupancy_before"] = snap.Cell.Occupancy().String()
		details["occupancy_after"] = after.Occupancy().String()

		return tx.AuditLogs().Create(ctx, tx.DB(), shared.AuditEntry{
			ID:         uuid.New(),
			Action:     shared.AuditCellOpened,
			LockerID:   key.LockerID,
			CellNumber: key.Number,
			Reason:     req.Reason.Kind(),
			Mode:       mode,
			Details:    details,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cell opened",
		"locker_id", key.LockerID,
		"cell", key.Number,
		"reason", req.Reason.Kind(),
		"mode", mode,
		"correlation_id", correlationID)

	return &OpenCellResult{
		Success: true,
		Mode:    mode,
		Note:    cell.Note(req.Reason.Kind(), mode, after),
		Cell:    after,
	}, nil
}

func (uc *cellUseCaseImpl) MarkFilled(ctx context.Context, key cell.Key, courierID uuid.UUID) (*cell.Cell, error) {
	now := uc.clock.Now()
	return uc.applyAudited(ctx, key, cell.Fill(courierID, now), shared.AuditCellRestocked, cell.ReasonRefill,
		map[string]any{"courier_id": courierID.String()})
}

func (uc *cellUseCaseImpl) AssignProduct(ctx context.Context, key cell.Key, productID, adminID uuid.UUID) (*cell.Cell, error) {
	product, err := uc.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, errs.Wrapf(errs.ErrDomainValidation, "product %s is inactive", productID)
	}

	now := uc.clock.Now()
	return uc.applyAudited(ctx, key, cell.Assign(productID, now), shared.AuditProductAssigned, cell.ReasonAdmin,
		map[string]any{
			"admin_id":     adminID.String(),
			"product_id":   productID.String(),
			"product_name": product.Name,
		})
}

func (uc *cellUseCaseImpl) UnassignProduct(ctx context.Context, key cell.Key, adminID uuid.UUID) (*cell.Cell, error) {
	now := uc.clock.Now()
	return uc.applyAudited(ctx, key, cell.Unassign(now), shared.AuditProductUnassigned, cell.ReasonAdmin,
		map[string]any{"admin_id": adminID.String()})
}

// applyAudited runs one transition and its audit entry in a single transaction.
func (uc *cellUseCaseImpl) applyAudited(
	ctx context.Context,
	key cell.Key,
	t cell.Transition,
	action shared.AuditAction,
	reason cell.ReasonKind,
	details map[string]any,
) (*cell.Cell, error) {
	var after *cell.Cell
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CellByLocation(ctx, key)
		if derr != nil {
			return classifyCellErr(derr, key)
		}

		after, derr = tx.Cells().Apply(ctx, tx.DB(), key, t)
		if derr != nil {
			return classifyCellErr(derr, key)
		}

		details["locker_name"] = snap.LockerName
		if _, ok := details["product_name"]; !ok {
			details["product_name"] = snap.ProductName
		}
		details["occupancy_before"] = snap.Cell.Occupancy().String()
		details["occupancy_after"] = after.Occupancy().String()

		return tx.AuditLogs().Create(ctx, tx.DB(), shared.AuditEntry{
			ID:         uuid.New(),
			Action:     action,
			LockerID:   key.LockerID,
			CellNumber: key.Number,
			Reason:     reason,
			// no controller is involved, so the entry carries no mode
			Details:    details,
			CreatedAt:  t.At,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cell updated",
		"locker_id", key.LockerID,
		"cell", key.Number,
		"action", action,
		"occupancy", after.Occupancy())
	return after, nil
}

func classifyCellErr(err error, key cell.Key) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrapf(err, "cell %s/%d", key.LockerID, key.Number), errs.ErrCellNotFound)
	case errs.Is(err, cell.ErrNoProduct):
		err = errs.WithHint(err, "assign a product to the cell first")
		return errs.Mark(errs.Wrapf(err, "cell %s/%d", key.LockerID, key.Number), errs.ErrInvalidCellState)
	default:
		return err
	}
}
