package cell

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReasonKind string

const (
	ReasonSale   ReasonKind = "sale"
	ReasonRefill ReasonKind = "refill"
	ReasonAdmin  ReasonKind = "admin"
)

// Reason is a closed set: SaleReason, RefillReason and AdminReason.
type Reason interface {
	Kind() ReasonKind
	// Metadata is written to the audit entry as is.
	Metadata() map[string]any
	// CorrelationID identifies the unlock command in device logs.
	CorrelationID(now time.Time) string
	// transition is nil when the reason only unlocks.
	transition(at time.Time) *Transition
}

type SaleReason struct {
	OrderID     uuid.UUID
	OrderNumber string
	PaymentID   uuid.UUID
}

func (SaleReason) Kind() ReasonKind { return ReasonSale }

func (r SaleReason) Metadata() map[string]any {
	return map[string]any{
		"order_id":     r.OrderID.String(),
		"order_number": r.OrderNumber,
		"payment_id":   r.PaymentID.String(),
	}
}

// Sale unlocks reuse the order id so retries of the same order look identical in logs.
func (r SaleReason) CorrelationID(time.Time) string {
	return r.OrderID.String()
}

func (SaleReason) transition(at time.Time) *Transition {
	t := Dispense(at)
	return &t
}

type RefillReason struct {
	CourierID uuid.UUID
}

func (RefillReason) Kind() ReasonKind { return ReasonRefill }

func (r RefillReason) Metadata() map[string]any {
	return map[string]any{"courier_id": r.CourierID.String()}
}

func (r RefillReason) CorrelationID(now time.Time) string {
	return synthesizeCorrelationID(ReasonRefill, now)
}

func (RefillReason) transition(at time.Time) *Transition {
	t := PrepareRefill(at)
	return &t
}

type AdminReason struct {
	AdminID uuid.UUID
	Comment string
}

func (AdminReason) Kind() ReasonKind { return ReasonAdmin }

func (r AdminReason) Metadata() map[string]any {
	m := map[string]any{"admin_id": r.AdminID.String()}
	if r.Comment != "" {
		m["comment"] = r.Comment
	}
	return m
}

func (r AdminReason) CorrelationID(now time.Time) string {
	return synthesizeCorrelationID(ReasonAdmin, now)
}

func (AdminReason) transition(time.Time) *Transition {
	return nil
}

// TransitionFor returns the occupancy change an opening with reason r implies, if any.
func TransitionFor(r Reason, at time.Time) (Transition, bool) {
	t := r.transition(at)
	if t == nil {
		return Transition{}, false
	}
	return *t, true
}

// REASON-timestamp-random
func synthesizeCorrelationID(kind ReasonKind, now time.Time) string {
	buf := make([]byte, 4)
	suffix := ""
	if _, err := rand.Read(buf); err == nil {
		suffix = hex.EncodeToString(buf)
	} else {
		suffix = fmt.Sprintf("%08x", now.UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("%s-%d-%s", strings.ToUpper(string(kind)), now.UnixMilli(), suffix)
}
