package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errs.New("order amount must be positive")
	ErrInvalidStatus = errs.New("invalid order status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusCompleted, StatusFailed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Order struct {
	id           uuid.UUID
	number       string
	amount       int64
	productID    uuid.UUID
	lockerID     uuid.UUID
	cellNumber   int
	referralCode string
	status       Status
	completedAt  *time.Time
	createdAt    time.Time
}

func NewOrder(productID, lockerID uuid.UUID, cellNumber int, amount int64, referralCode string, now time.Time) (*Order, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Order{
		id:           uuid.New(),
		number:       newOrderNumber(now),
		amount:       amount,
		productID:    productID,
		lockerID:     lockerID,
		cellNumber:   cellNumber,
		referralCode: strings.ToUpper(strings.TrimSpace(referralCode)),
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	number string,
	amount int64,
	productID, lockerID uuid.UUID,
	cellNumber int,
	referralCode string,
	status Status,
	completedAt *time.Time,
	createdAt time.Time,
) *Order {
	return &Order{
		id:           id,
		number:       number,
		amount:       amount,
		productID:    productID,
		lockerID:     lockerID,
		cellNumber:   cellNumber,
		referralCode: referralCode,
		status:       status,
		completedAt:  completedAt,
		createdAt:    createdAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) Number() string          { return o.number }
func (o *Order) Amount() int64           { return o.amount }
func (o *Order) ProductID() uuid.UUID    { return o.productID }
func (o *Order) LockerID() uuid.UUID     { return o.lockerID }
func (o *Order) CellNumber() int         { return o.cellNumber }
func (o *Order) ReferralCode() string    { return o.referralCode }
func (o *Order) Status() Status          { return o.status }
func (o *Order) CompletedAt() *time.Time { return o.completedAt }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

// ORD-YYYYMMDD-XXXXXX
func newOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), now.UnixNano()%1_000_000)
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}
