package referrer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Referrer is the party credited for sales made with its referral code.
type Referrer struct {
	id              uuid.UUID
	code            string
	name            string
	notifyChatID    string
	commissionRate  *decimal.Decimal
	salesCount      int64
	commissionTotal int64
	points          int64
}

func ReconstructReferrer(
	id uuid.UUID,
	code, name, notifyChatID string,
	commissionRate *decimal.Decimal,
	salesCount, commissionTotal, points int64,
) *Referrer {
	return &Referrer{
		id:              id,
		code:            code,
		name:            name,
		notifyChatID:    notifyChatID,
		commissionRate:  commissionRate,
		salesCount:      salesCount,
		commissionTotal: commissionTotal,
		points:          points,
	}
}

func (r *Referrer) ID() uuid.UUID          { return r.id }
func (r *Referrer) Code() string           { return r.code }
func (r *Referrer) Name() string           { return r.name }
func (r *Referrer) NotifyChatID() string   { return r.notifyChatID }
func (r *Referrer) SalesCount() int64      { return r.salesCount }
func (r *Referrer) CommissionTotal() int64 { return r.commissionTotal }
func (r *Referrer) Points() int64          { return r.points }

// RateOr returns the referrer's own rate, falling back to def.
func (r *Referrer) RateOr(def decimal.Decimal) decimal.Decimal {
	if r.commissionRate == nil {
		return def
	}
	return *r.commissionRate
}

func (r *Referrer) CanBeNotified() bool {
	return r.notifyChatID != ""
}
