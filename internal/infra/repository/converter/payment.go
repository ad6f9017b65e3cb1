package converter

import (
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/domain/referrer"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/pkg/pgconv"
)

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	details, err := payment.UnmarshalDetails(row.Details)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	return payment.ReconstructPayment(
		row.ID,
		payment.Provider(row.Provider),
		row.InvoiceID,
		row.PageUrl,
		row.Amount,
		status,
		details,
		pgconv.TimePtrFromPgtype(row.ProviderModifiedAt),
		pgconv.UUIDPtrFromPgtype(row.SaleID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func PaymentToCreateParams(p *payment.Payment) (sqlc.CreatePaymentParams, error) {
	details, err := p.Details().Marshal()
	if err != nil {
		return sqlc.CreatePaymentParams{}, err
	}
	return sqlc.CreatePaymentParams{
		ID:        p.ID(),
		Provider:  p.Provider().String(),
		InvoiceID: p.InvoiceID(),
		PageUrl:   p.PageURL(),
		Amount:    p.Amount(),
		Status:    p.Status().String(),
		Details:   details,
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}, nil
}

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	return order.ReconstructOrder(
		row.ID,
		row.OrderNumber,
		row.Amount,
		row.ProductID,
		row.LockerID,
		int(row.CellNumber),
		row.ReferralCode,
		status,
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:           o.ID(),
		OrderNumber:  o.Number(),
		Amount:       o.Amount(),
		ProductID:    o.ProductID(),
		LockerID:     o.LockerID(),
		CellNumber:   int32(o.CellNumber()),
		ReferralCode: o.ReferralCode(),
		Status:       string(o.Status()),
		CreatedAt:    pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func SaleFromRow(row sqlc.Sales) (*order.Sale, error) {
	rate, err := pgconv.DecimalPtrFromNumeric(row.CommissionRate)
	if err != nil {
		return nil, errs.Wrapf(err, "sale %s", row.ID)
	}
	c := order.Commission{Amount: row.Commission, Points: row.Points}
	if rate != nil {
		c.Rate = *rate
	}
	return order.ReconstructSale(
		row.ID,
		row.OrderID,
		row.PaymentID,
		row.Amount,
		row.ProductID,
		row.LockerID,
		int(row.CellNumber),
		pgconv.UUIDPtrFromPgtype(row.ReferrerID),
		c,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SaleToCreateParams(s *order.Sale) sqlc.CreateSaleParams {
	c := s.Commission()
	return sqlc.CreateSaleParams{
		ID:             s.ID(),
		OrderID:        s.OrderID(),
		PaymentID:      s.PaymentID(),
		Amount:         s.Amount(),
		ProductID:      s.ProductID(),
		LockerID:       s.LockerID(),
		CellNumber:     int32(s.CellNumber()),
		ReferrerID:     pgconv.UUIDPtrToPgtype(s.ReferrerID()),
		CommissionRate: pgconv.DecimalToNumeric(c.Rate),
		Commission:     c.Amount,
		Points:         c.Points,
		CreatedAt:      pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ReferrerFromRow(row sqlc.Referrers) (*referrer.Referrer, error) {
	rate, err := pgconv.DecimalPtrFromNumeric(row.CommissionRate)
	if err != nil {
		return nil, errs.Wrapf(err, "referrer %s", row.ID)
	}
	return referrer.ReconstructReferrer(
		row.ID,
		row.Code,
		row.Name,
		row.NotifyChatID,
		rate,
		row.SalesCount,
		row.CommissionTotal,
		row.Points,
	), nil
}
