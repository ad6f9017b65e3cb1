package payment

import (
	"encoding/json"

	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// Details is the provider detail blob stored with a payment.
type Details struct {
	OrderID        uuid.UUID  `json:"order_id"`
	ProductID      uuid.UUID  `json:"product_id"`
	LockerID       uuid.UUID  `json:"locker_id"`
	CellNumber     int        `json:"cell_number"`
	DeviceID       string     `json:"device_id"`
	ReferralCode   string     `json:"referral_code,omitempty"`
	ReferrerID     *uuid.UUID `json:"referrer_id,omitempty"`
	CommissionRate string     `json:"commission_rate,omitempty"`
}

func (d Details) Marshal() ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, errs.Wrap(err, "marshal payment details")
	}
	return b, nil
}

func UnmarshalDetails(b []byte) (Details, error) {
	var d Details
	if len(b) == 0 {
		return d, nil
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return Details{}, errs.Wrap(err, "unmarshal payment details")
	}
	return d, nil
}
