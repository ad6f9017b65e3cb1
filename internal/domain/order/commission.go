package order

import (
	"ortomat-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errs.New("commission rate must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// Commission is the referrer share of a sale. Amounts are in minor currency units.
type Commission struct {
	Rate   decimal.Decimal
	Amount int64
	Points int64
}

func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Wrap(ErrInvalidRate, err.Error())
	}
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidRate
	}
	return rate, nil
}

// CalculateCommission floors the share to a whole minor unit and grants
// pointsPerUnit points for every whole major unit of commission.
func CalculateCommission(amount int64, rate decimal.Decimal, pointsPerUnit int64) Commission {
	if amount <= 0 || !rate.IsPositive() {
		return Commission{Rate: rate}
	}
	share := decimal.NewFromInt(amount).Mul(rate).Div(hundred).Floor()
	units := share.Div(hundred).Floor()
	return Commission{
		Rate:   rate,
		Amount: share.IntPart(),
		Points: units.IntPart() * pointsPerUnit,
	}
}
