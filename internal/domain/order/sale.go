package order

import (
	"time"

	"github.com/google/uuid"
)

// Sale is the accounting record of a paid order. At most one exists per payment.
type Sale struct {
	id         uuid.UUID
	orderID    uuid.UUID
	paymentID  uuid.UUID
	amount     int64
	productID  uuid.UUID
	lockerID   uuid.UUID
	cellNumber int
	referrerID *uuid.UUID
	commission Commission
	createdAt  time.Time
}

func NewSale(o *Order, paymentID uuid.UUID, referrerID *uuid.UUID, commission Commission, now time.Time) *Sale {
	if referrerID == nil {
		commission = Commission{}
	}
	return &Sale{
		id:         uuid.New(),
		orderID:    o.ID(),
		paymentID:  paymentID,
		amount:     o.Amount(),
		productID:  o.ProductID(),
		lockerID:   o.LockerID(),
		cellNumber: o.CellNumber(),
		referrerID: referrerID,
		commission: commission,
		createdAt:  now,
	}
}

func ReconstructSale(
	id, orderID, paymentID uuid.UUID,
	amount int64,
	productID, lockerID uuid.UUID,
	cellNumber int,
	referrerID *uuid.UUID,
	commission Commission,
	createdAt time.Time,
) *Sale {
	return &Sale{
		id:         id,
		orderID:    orderID,
		paymentID:  paymentID,
		amount:     amount,
		productID:  productID,
		lockerID:   lockerID,
		cellNumber: cellNumber,
		referrerID: referrerID,
		commission: commission,
		createdAt:  createdAt,
	}
}

func (s *Sale) ID() uuid.UUID          { return s.id }
func (s *Sale) OrderID() uuid.UUID     { return s.orderID }
func (s *Sale) PaymentID() uuid.UUID   { return s.paymentID }
func (s *Sale) Amount() int64          { return s.amount }
func (s *Sale) ProductID() uuid.UUID   { return s.productID }
func (s *Sale) LockerID() uuid.UUID    { return s.lockerID }
func (s *Sale) CellNumber() int        { return s.cellNumber }
func (s *Sale) ReferrerID() *uuid.UUID { return s.referrerID }
func (s *Sale) Commission() Commission { return s.commission }
func (s *Sale) CreatedAt() time.Time   { return s.createdAt }
