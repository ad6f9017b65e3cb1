package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/domain/referrer"
	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const notifyTimeout = 2 * time.Minute

type Outcome string

const (
	// status stored; for successes the sale was recorded and the cell opened
	OutcomeApplied Outcome = "applied"
	// a sale already exists for the payment
	OutcomeDuplicate Outcome = "duplicate"
	// an event with a newer provider timestamp was already stored
	OutcomeStale          Outcome = "stale"
	OutcomeUnknownPayment Outcome = "unknown_payment"
	// authenticated but unusable, or failed internally; acknowledged anyway
	OutcomeIgnored Outcome = "ignored"
)

type EventOutcome struct {
	Outcome   Outcome
	InvoiceID string
	Status    payment.Status
	SaleID    *uuid.UUID
	Cell      *OpenCellResult
}

type InitiatePurchaseRequest struct {
	LockerID     uuid.UUID
	CellNumber   int
	Provider     payment.Provider
	ReferralCode string
}

type PurchaseResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	InvoiceID   string
	PageURL     string
	Amount      int64
}

type PaymentCommands interface {
	// HandleEvent returns an error when the callback failed authentication, names an
	// unknown provider or could not be verified; everything else is acknowledged.
	HandleEvent(ctx context.Context, provider payment.Provider, body []byte, signature string) (*EventOutcome, error)
	SyncStatus(ctx context.Context, invoiceID string) (*EventOutcome, error)
	InitiatePurchase(ctx context.Context, req InitiatePurchaseRequest) (*PurchaseResult, error)
}

type ReferralSettings struct {
	DefaultRate   decimal.Decimal
	PointsPerUnit int64
}

func NewReferralSettings(cfg config.ReferralConfig) (ReferralSettings, error) {
	rate, err := order.ParseRate(cfg.DefaultCommissionPercent)
	if err != nil {
		return ReferralSettings{}, errs.Wrap(err, "REFERRAL_COMMISSION_PERCENT")
	}
	return ReferralSettings{DefaultRate: rate, PointsPerUnit: cfg.PointsPerUnit}, nil
}

// PaymentUseCase reconciles provider reports with orders, sales and cells.
type PaymentUseCase struct {
	uow       shared.UnitOfWork
	providers shared.PaymentProviders
	cells     CellCommands
	notifier  shared.ReferrerNotifier
	referral  ReferralSettings
	clock     clock.Clock
	logger    *slog.Logger

	// tracks background notifications so shutdown and tests can wait for them
	inflight sync.WaitGroup
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	providers shared.PaymentProviders,
	cells CellCommands,
	notifier shared.ReferrerNotifier,
	referral ReferralSettings,
	clk clock.Clock,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		uow:       uow,
		providers: providers,
		cells:     cells,
		notifier:  notifier,
		referral:  referral,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *PaymentUseCase) HandleEvent(ctx context.Context, provider payment.Provider, body []byte, signature string) (*EventOutcome, error) {
	p, ok := uc.providers.Get(provider)
	if !ok {
		return nil, errs.Wrapf(errs.ErrUnknownProvider, "provider %q", provider)
	}

	ev, err := p.ParseEvent(ctx, body, signature)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthenticated) {
			uc.logger.Warn("payment callback rejected", "provider", provider, "error", err.Error())
			return nil, err
		}
		if errs.Is(err, payment.ErrInvalidEvent) || errs.Is(err, payment.ErrInvalidStatus) {
			uc.logger.Warn("payment callback unreadable, acknowledging", "provider", provider, "error", err.Error())
			return &EventOutcome{Outcome: OutcomeIgnored}, nil
		}
		// signature not checked yet; the provider has to deliver again
		uc.logger.Error("payment callback not verified", "provider", provider, "error", err.Error())
		return nil, err
	}

	out, err := uc.reconcile(ctx, ev)
	if err != nil {
		uc.logger.Error("payment event processing failed",
			"provider", provider,
			"invoice_id", ev.InvoiceID,
			"status", ev.Status,
			"error", err.Error())
		return &EventOutcome{Outcome: OutcomeIgnored, InvoiceID: ev.InvoiceID, Status: ev.Status}, nil
	}
	return out, nil
}

func (uc *PaymentUseCase) SyncStatus(ctx context.Context, invoiceID string) (*EventOutcome, error) {
	pay, err := uc.uow.CommandReads().LatestPaymentByInvoiceID(ctx, invoiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, err
	}

	p, ok := uc.providers.Get(pay.Provider())
	if !ok {
		return nil, errs.Wrapf(errs.ErrUnknownProvider, "provider %q", pay.Provider())
	}

	ev, err := p.FetchStatus(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	ev.Provider = pay.Provider()

	return uc.reconcile(ctx, ev)
}

func (uc *PaymentUseCase) InitiatePurchase(ctx context.Context, req InitiatePurchaseRequest) (*PurchaseResult, error) {
	p, ok := uc.providers.Get(req.Provider)
	if !ok {
		return nil, errs.Wrapf(errs.ErrUnknownProvider, "provider %q", req.Provider)
	}

	key := cell.Key{LockerID: req.LockerID, Number: req.CellNumber}
	reads := uc.uow.CommandReads()
	snap, err := reads.CellByLocation(ctx, key)
	if err != nil {
		return nil, classifyCellErr(err, key)
	}
	if !snap.Cell.IsPurchasable() || snap.ProductPrice <= 0 {
		err := errs.Wrapf(errs.ErrCellNotForSale, "cell %s/%d is %s", key.LockerID, key.Number, snap.Cell.Occupancy())
		return nil, errs.WithHint(err, "only stocked cells can be purchased")
	}

	now := uc.clock.Now()
	o, err := order.NewOrder(*snap.Cell.ProductID(), key.LockerID, key.Number, snap.ProductPrice, req.ReferralCode, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	details := payment.Details{
		OrderID:      o.ID(),
		ProductID:    o.ProductID(),
		LockerID:     key.LockerID,
		CellNumber:   key.Number,
		DeviceID:     snap.DeviceID,
		ReferralCode: o.ReferralCode(),
	}
	ref, err := uc.lookupReferrer(ctx, reads, nil, o.ReferralCode())
	if err != nil {
		return nil, err
	}
	if ref != nil {
		id := ref.ID()
		details.ReferrerID = &id
		details.CommissionRate = ref.RateOr(uc.referral.DefaultRate).String()
	}

	inv, err := p.CreateInvoice(ctx, shared.InvoiceRequest{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Amount:      o.Amount(),
		Description: snap.ProductName,
	})
	if err != nil {
		return nil, err
	}

	pay, err := payment.NewPayment(req.Provider, inv.ID, inv.PageURL, o.Amount(), details, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Orders().Create(ctx, tx.DB(), o); derr != nil {
			return derr
		}
		return tx.Payments().Create(ctx, tx.DB(), pay)
	})
	if err != nil {
		uc.logger.Error("invoice issued but purchase not stored",
			"order_number", o.Number(),
			"invoice_id", inv.ID,
			"provider", req.Provider,
			"error", err.Error())
		return nil, err
	}

	uc.logger.Info("purchase initiated",
		"order_number", o.Number(),
		"invoice_id", inv.ID,
		"provider", req.Provider,
		"amount", o.Amount())

	return &PurchaseResult{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		InvoiceID:   inv.ID,
		PageURL:     inv.PageURL,
		Amount:      o.Amount(),
	}, nil
}

// reconcile applies one authenticated provider report.
func (uc *PaymentUseCase) reconcile(ctx context.Context, ev payment.Event) (*EventOutcome, error) {
	out := &EventOutcome{InvoiceID: ev.InvoiceID, Status: ev.Status}
	log := uc.logger.With("provider", ev.Provider, "invoice_id", ev.InvoiceID, "status", ev.Status)

	pay, err := uc.uow.CommandReads().PaymentByInvoice(ctx, ev.Provider, ev.InvoiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Warn("payment event for unknown invoice dropped")
			out.Outcome = OutcomeUnknownPayment
			return out, nil
		}
		return nil, err
	}

	if pay.HasSale() {
		log.Info("payment already settled, skipping event")
		out.Outcome = OutcomeDuplicate
		out.SaleID = pay.SaleID()
		return out, nil
	}
	if pay.IsStale(ev) {
		log.Info("stale payment event ignored", "event_modified_at", ev.ModifiedAt, "stored_modified_at", pay.ModifiedAt())
		out.Outcome = OutcomeStale
		return out, nil
	}
	if ev.Amount != 0 && ev.Amount != pay.Amount() {
		log.Warn("payment event amount differs from invoice", "event_amount", ev.Amount, "invoice_amount", pay.Amount())
	}

	var settled *settlement
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settled = nil
		out.Outcome = OutcomeApplied

		stored, derr := tx.Payments().UpdateStatus(ctx, tx.DB(), pay.ID(), ev)
		if derr != nil {
			return derr
		}
		if !stored {
			out.Outcome = OutcomeStale
			return nil
		}

		switch {
		case ev.Status.IsSuccess():
			s, derr := uc.settle(ctx, tx, pay)
			if derr != nil {
				return derr
			}
			if s == nil {
				out.Outcome = OutcomeDuplicate
				return nil
			}
			settled = s
			return nil

		case ev.Status.IsFailure():
			failed, derr := tx.Orders().Fail(ctx, tx.DB(), pay.Details().OrderID)
			if derr != nil {
				return derr
			}
			if !failed {
				log.Info("order no longer pending, left unchanged", "order_id", pay.Details().OrderID)
			}
			return nil

		default:
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	if settled == nil {
		log.Info("payment event processed", "outcome", out.Outcome)
		return out, nil
	}

	saleID := settled.sale.ID()
	out.SaleID = &saleID
	log.Info("sale recorded", "sale_id", saleID, "order_number", settled.order.Number())

	res, err := uc.cells.OpenCell(ctx, OpenCellRequest{
		DeviceID:   pay.Details().DeviceID,
		LockerID:   settled.order.LockerID(),
		CellNumber: settled.order.CellNumber(),
		Reason: cell.SaleReason{
			OrderID:     settled.order.ID(),
			OrderNumber: settled.order.Number(),
			PaymentID:   pay.ID(),
		},
	})
	if err != nil {
		// the sale stands; the cell needs a manual opening
		log.Error("failed to open cell for paid order",
			"order_number", settled.order.Number(),
			"locker_id", settled.order.LockerID(),
			"cell", settled.order.CellNumber(),
			"error", err.Error())
	} else {
		out.Cell = res
	}

	if settled.notification != nil {
		uc.notifyAsync(ctx, *settled.notification)
	}
	return out, nil
}

type settlement struct {
	order        *order.Order
	sale         *order.Sale
	notification *shared.SaleNotification
}

// settle records the sale for a successful payment. A nil settlement means
// another delivery of the same event won the sale insert.
func (uc *PaymentUseCase) settle(ctx context.Context, tx shared.Tx, pay *payment.Payment) (*settlement, error) {
	details := pay.Details()
	now := uc.clock.Now()

	o, err := tx.Reads().OrderByID(ctx, details.OrderID)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s of invoice %s", details.OrderID, pay.InvoiceID())
	}

	ref, err := uc.lookupReferrer(ctx, tx.Reads(), details.ReferrerID, details.ReferralCode)
	if err != nil {
		return nil, err
	}

	var (
		referrerID *uuid.UUID
		commission order.Commission
	)
	if ref != nil {
		id := ref.ID()
		referrerID = &id
		commission = order.CalculateCommission(o.Amount(), uc.rateFor(details, ref), uc.referral.PointsPerUnit)
	}

	sale := order.NewSale(o, pay.ID(), referrerID, commission, now)
	created, err := tx.Sales().Create(ctx, tx.DB(), sale)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}

	completed, err := tx.Orders().Complete(ctx, tx.DB(), o.ID(), now)
	if err != nil {
		return nil, err
	}
	if !completed {
		uc.logger.Warn("paid order was not pending", "order_id", o.ID(), "status", o.Status())
	}
	if err := tx.Payments().LinkSale(ctx, tx.DB(), pay.ID(), sale.ID()); err != nil {
		return nil, err
	}

	s := &settlement{order: o, sale: sale}
	if ref == nil {
		return s, nil
	}
	if err := tx.Referrers().RecordSale(ctx, tx.DB(), ref.ID(), sale.Commission()); err != nil {
		return nil, err
	}

	if ref.CanBeNotified() {
		n := shared.SaleNotification{
			ChatID:      ref.NotifyChatID(),
			OrderNumber: o.Number(),
			CellNumber:  o.CellNumber(),
			Amount:      o.Amount(),
			Commission:  sale.Commission().Amount,
			Points:      sale.Commission().Points,
		}
		if snap, err := tx.Reads().CellByLocation(ctx, cell.Key{LockerID: o.LockerID(), Number: o.CellNumber()}); err == nil {
			n.ProductName = snap.ProductName
			n.LockerName = snap.LockerName
		}
		s.notification = &n
	}
	return s, nil
}

// rateFor prefers the rate frozen on the payment at purchase time.
func (uc *PaymentUseCase) rateFor(details payment.Details, ref *referrer.Referrer) decimal.Decimal {
	if details.CommissionRate != "" {
		if rate, err := order.ParseRate(details.CommissionRate); err == nil {
			return rate
		}
		uc.logger.Warn("invalid commission rate on payment details", "rate", details.CommissionRate)
	}
	return ref.RateOr(uc.referral.DefaultRate)
}

// lookupReferrer returns nil for an unknown referral code.
func (uc *PaymentUseCase) lookupReferrer(ctx context.Context, reads shared.CommandReads, id *uuid.UUID, code string) (*referrer.Referrer, error) {
	var (
		ref *referrer.Referrer
		err error
	)
	switch {
	case id != nil:
		ref, err = reads.ReferrerByID(ctx, *id)
	case strings.TrimSpace(code) != "":
		ref, err = reads.ReferrerByCode(ctx, code)
	default:
		return nil, nil
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.logger.Info("referral code not recognized", "code", code)
			return nil, nil
		}
		return nil, err
	}
	return ref, nil
}

func (uc *PaymentUseCase) notifyAsync(ctx context.Context, n shared.SaleNotification) {
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := uc.notifier.NotifySale(ctx, n); err != nil {
			uc.logger.Warn("referrer notification dropped", "order_number", n.OrderNumber, "error", err.Error())
		}
	}()
}

// Wait blocks until background notifications have finished.
func (uc *PaymentUseCase) Wait() {
	uc.inflight.Wait()
}
