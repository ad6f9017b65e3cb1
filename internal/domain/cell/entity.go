package cell

import (
	"time"

	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidOccupancy  = errs.New("invalid occupancy")
	ErrInvalidNumber     = errs.New("cell number out of range")
	ErrNoProduct         = errs.New("cell has no product assigned")
	ErrUnknownTransition = errs.New("unknown cell transition")
)

// Key identifies a cell; (locker, number) is unique.
type Key struct {
	LockerID uuid.UUID
	Number   int
}

type Cell struct {
	lockerID        uuid.UUID
	number          int
	productID       *uuid.UUID
	occupancy       Occupancy
	lastRestockedAt *time.Time
	restockedBy     *uuid.UUID
	updatedAt       time.Time
}

func NewVacantCell(lockerID uuid.UUID, number, cellCount int, now time.Time) (*Cell, error) {
	if number < 1 || number > cellCount {
		return nil, ErrInvalidNumber
	}
	return &Cell{
		lockerID:  lockerID,
		number:    number,
		occupancy: OccupancyVacant,
		updatedAt: now,
	}, nil
}

func ReconstructCell(
	lockerID uuid.UUID,
	number int,
	productID *uuid.UUID,
	occupancy Occupancy,
	lastRestockedAt *time.Time,
	restockedBy *uuid.UUID,
	updatedAt time.Time,
) *Cell {
	return &Cell{
		lockerID:        lockerID,
		number:          number,
		productID:       productID,
		occupancy:       occupancy,
		lastRestockedAt: lastRestockedAt,
		restockedBy:     restockedBy,
		updatedAt:       updatedAt,
	}
}

func (c *Cell) Key() Key                    { return Key{LockerID: c.lockerID, Number: c.number} }
func (c *Cell) LockerID() uuid.UUID         { return c.lockerID }
func (c *Cell) Number() int                 { return c.number }
func (c *Cell) ProductID() *uuid.UUID       { return c.productID }
func (c *Cell) Occupancy() Occupancy        { return c.occupancy }
func (c *Cell) LastRestockedAt() *time.Time { return c.lastRestockedAt }
func (c *Cell) RestockedBy() *uuid.UUID     { return c.restockedBy }
func (c *Cell) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Cell) HasProduct() bool {
	return c.productID != nil
}

func (c *Cell) IsPurchasable() bool {
	return c.occupancy == OccupancyStocked && c.productID != nil
}

// Apply returns the cell after t without modifying the receiver.
// The SQL in the cell repository encodes the same rules as a single conditional UPDATE.
func (c *Cell) Apply(t Transition) (*Cell, error) {
	next := *c
	next.updatedAt = t.At

	switch t.Kind {
	case TransitionDispense:
		next.occupancy = emptyOccupancy(next.productID)

	case TransitionPrepareRefill:
		next.lastRestockedAt = nil
		next.occupancy = emptyOccupancy(next.productID)

	case TransitionFill:
		if next.productID == nil {
			return nil, ErrNoProduct
		}
		at := t.At
		courier := t.CourierID
		next.occupancy = OccupancyStocked
		next.lastRestockedAt = &at
		next.restockedBy = &courier

	case TransitionAssign:
		product := t.ProductID
		sameProduct := next.productID != nil && *next.productID == product
		next.productID = &product
		if !(sameProduct && next.occupancy == OccupancyStocked) {
			next.occupancy = OccupancyAssignedEmpty
		}

	case TransitionUnassign:
		next.productID = nil
		next.occupancy = OccupancyVacant

	default:
		return nil, ErrUnknownTransition
	}

	return &next, nil
}

func emptyOccupancy(productID *uuid.UUID) Occupancy {
	if productID == nil {
		return OccupancyVacant
	}
	return OccupancyAssignedEmpty
}
