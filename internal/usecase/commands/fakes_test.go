//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/domain/order"
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/domain/referrer"
	"ortomat-backend/internal/infra"
	sqlc "ortomat-backend/internal/infra/sqlc/generated"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

// memState is everything a transaction can touch; it is copied on begin and restored on error.
type memState struct {
	lockers   map[uuid.UUID]*locker.Locker
	cells     map[cell.Key]*cell.Cell
	products  map[uuid.UUID]*shared.ProductSnapshot
	orders    map[uuid.UUID]*order.Order
	payments  map[uuid.UUID]*payment.Payment
	sales     map[uuid.UUID]*order.Sale // by payment id
	referrers map[uuid.UUID]*referrer.Referrer
	audits    []shared.AuditEntry
}

func (s memState) clone() memState {
	return memState{
		lockers:   maps.Clone(s.lockers),
		cells:     maps.Clone(s.cells),
		products:  maps.Clone(s.products),
		orders:    maps.Clone(s.orders),
		payments:  maps.Clone(s.payments),
		sales:     maps.Clone(s.sales),
		referrers: maps.Clone(s.referrers),
		audits:    append([]shared.AuditEntry(nil), s.audits...),
	}
}

// memUoW serializes transactions, which is enough to model the unique
// constraint and conditional updates the real store relies on.
type memUoW struct {
	mu    sync.Mutex
	state memState

	// failOn makes the named repository call fail inside a transaction
	failOn string
}

func newMemUoW() *memUoW {
	return &memUoW{state: memState{
		lockers:   map[uuid.UUID]*locker.Locker{},
		cells:     map[cell.Key]*cell.Cell{},
		products:  map[uuid.UUID]*shared.ProductSnapshot{},
		orders:    map[uuid.UUID]*order.Order{},
		payments:  map[uuid.UUID]*payment.Payment{},
		sales:     map[uuid.UUID]*order.Sale{},
		referrers: map[uuid.UUID]*referrer.Referrer{},
	}}
}

var _ shared.UnitOfWork = (*memUoW)(nil)

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	saved := u.state.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.state = saved
		return err
	}
	return nil
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return &memReads{u: u, lock: true}
}

// seeding and inspection helpers

func (u *memUoW) addLocker(l *locker.Locker) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.lockers[l.ID()] = l
	for _, c := range l.Cells() {
		u.state.cells[c.Key()] = c
	}
}

func (u *memUoW) putCell(c *cell.Cell) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.cells[c.Key()] = c
}

func (u *memUoW) addProduct(p *shared.ProductSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.products[p.ID] = p
}

func (u *memUoW) addReferrer(r *referrer.Referrer) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.referrers[r.ID()] = r
}

func (u *memUoW) cell(key cell.Key) *cell.Cell {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.cells[key]
}

func (u *memUoW) audits() []shared.AuditEntry {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]shared.AuditEntry(nil), u.state.audits...)
}

func (u *memUoW) salesCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.sales)
}

func (u *memUoW) saleFor(paymentID uuid.UUID) *order.Sale {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.sales[paymentID]
}

func (u *memUoW) order(id uuid.UUID) *order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.orders[id]
}

func (u *memUoW) paymentByInvoice(invoiceID string) *payment.Payment {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.state.payments {
		if p.InvoiceID() == invoiceID {
			return p
		}
	}
	return nil
}

func (u *memUoW) referrer(id uuid.UUID) *referrer.Referrer {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.referrers[id]
}

type memTx struct {
	u *memUoW
}

func (t *memTx) st() *memState { return &t.u.state }

func (t *memTx) fail(op string) error {
	if t.u.failOn == op {
		return infra.WrapRepoErr(op+" failed", errs.New("connection reset"))
	}
	return nil
}

func (t *memTx) Lockers() shared.LockerRepository     { return (*memLockers)(t) }
func (t *memTx) Cells() shared.CellRepository         { return (*memCells)(t) }
func (t *memTx) Orders() shared.OrderRepository       { return (*memOrders)(t) }
func (t *memTx) Payments() shared.PaymentRepository   { return (*memPayments)(t) }
func (t *memTx) Sales() shared.SaleRepository         { return (*memSales)(t) }
func (t *memTx) Referrers() shared.ReferrerRepository { return (*memReferrers)(t) }
func (t *memTx) AuditLogs() shared.AuditLogRepository { return (*memAudits)(t) }
func (t *memTx) Reads() shared.CommandReads           { return &memReads{u: t.u} }
func (t *memTx) DB() sqlc.DBTX                        { return nil }

type memLockers memTx

func (r *memLockers) Create(_ context.Context, _ sqlc.DBTX, l *locker.Locker) error {
	t := (*memTx)(r)
	if err := t.fail("lockers.create"); err != nil {
		return err
	}
	t.st().lockers[l.ID()] = l
	return nil
}

type memCells memTx

func (r *memCells) CreateForLocker(_ context.Context, _ sqlc.DBTX, l *locker.Locker) (int64, error) {
	t := (*memTx)(r)
	if err := t.fail("cells.create"); err != nil {
		return 0, err
	}
	for _, c := range l.Cells() {
		t.st().cells[c.Key()] = c
	}
	return int64(l.CellCount()), nil
}

func (r *memCells) Apply(_ context.Context, _ sqlc.DBTX, key cell.Key, tr cell.Transition) (*cell.Cell, error) {
	t := (*memTx)(r)
	if err := t.fail("cells.apply"); err != nil {
		return nil, err
	}
	c, ok := t.st().cells[key]
	if !ok {
		return nil, notFound("cell")
	}
	next, err := c.Apply(tr)
	if err != nil {
		return nil, err
	}
	t.st().cells[key] = next
	return next, nil
}

type memOrders memTx

func (r *memOrders) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	t := (*memTx)(r)
	t.st().orders[o.ID()] = o
	return nil
}

func (r *memOrders) Complete(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	return (*memTx)(r).moveOrder(id, order.StatusCompleted, &at)
}

func (r *memOrders) Fail(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	return (*memTx)(r).moveOrder(id, order.StatusFailed, nil)
}

func (t *memTx) moveOrder(id uuid.UUID, to order.Status, at *time.Time) (bool, error) {
	o, ok := t.st().orders[id]
	if !ok || !o.IsPending() {
		return false, nil
	}
	t.st().orders[id] = order.ReconstructOrder(o.ID(), o.Number(), o.Amount(), o.ProductID(), o.LockerID(),
		o.CellNumber(), o.ReferralCode(), to, at, o.CreatedAt())
	return true, nil
}

type memPayments memTx

func (r *memPayments) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	t := (*memTx)(r)
	if err := t.fail("payments.create"); err != nil {
		return err
	}
	t.st().payments[p.ID()] = p
	return nil
}

func (r *memPayments) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, ev payment.Event) (bool, error) {
	t := (*memTx)(r)
	if err := t.fail("payments.update"); err != nil {
		return false, err
	}
	p, ok := t.st().payments[id]
	if !ok || p.IsStale(ev) {
		return false, nil
	}
	modified := p.ModifiedAt()
	if !ev.ModifiedAt.IsZero() {
		at := ev.ModifiedAt
		modified = &at
	}
	t.st().payments[id] = payment.ReconstructPayment(p.ID(), p.Provider(), p.InvoiceID(), p.PageURL(), p.Amount(),
		ev.Status, p.Details(), modified, p.SaleID(), p.CreatedAt())
	return true, nil
}

func (r *memPayments) LinkSale(_ context.Context, _ sqlc.DBTX, paymentID, saleID uuid.UUID) error {
	t := (*memTx)(r)
	p := t.st().payments[paymentID]
	t.st().payments[paymentID] = payment.ReconstructPayment(p.ID(), p.Provider(), p.InvoiceID(), p.PageURL(), p.Amount(),
		p.Status(), p.Details(), p.ModifiedAt(), &saleID, p.CreatedAt())
	return nil
}

type memSales memTx

func (r *memSales) Create(_ context.Context, _ sqlc.DBTX, s *order.Sale) (bool, error) {
	t := (*memTx)(r)
	if _, exists := t.st().sales[s.PaymentID()]; exists {
		return false, nil
	}
	t.st().sales[s.PaymentID()] = s
	return true, nil
}

type memReferrers memTx

func (r *memReferrers) RecordSale(_ context.Context, _ sqlc.DBTX, id uuid.UUID, c order.Commission) error {
	t := (*memTx)(r)
	ref := t.st().referrers[id]
	rate := ref.RateOr(c.Rate)
	t.st().referrers[id] = referrer.ReconstructReferrer(ref.ID(), ref.Code(), ref.Name(), ref.NotifyChatID(), &rate,
		ref.SalesCount()+1, ref.CommissionTotal()+c.Amount, ref.Points()+c.Points)
	return nil
}

type memAudits memTx

func (r *memAudits) Create(_ context.Context, _ sqlc.DBTX, e shared.AuditEntry) error {
	t := (*memTx)(r)
	if err := t.fail("audit.create"); err != nil {
		return err
	}
	t.st().audits = append(t.st().audits, e)
	return nil
}

type memReads struct {
	u    *memUoW
	lock bool
}

func (r *memReads) view(fn func(s *memState)) {
	if r.lock {
		r.u.mu.Lock()
		defer r.u.mu.Unlock()
	}
	fn(&r.u.state)
}

func (r *memReads) CellByLocation(_ context.Context, key cell.Key) (snap *shared.CellSnapshot, err error) {
	r.view(func(s *memState) {
		c, ok := s.cells[key]
		if !ok {
			err = notFound("cell")
			return
		}
		snap = &shared.CellSnapshot{Cell: c}
		if l, ok := s.lockers[key.LockerID]; ok {
			snap.LockerName = l.Name()
			snap.DeviceID = l.DeviceID()
		}
		if c.ProductID() != nil {
			if p, ok := s.products[*c.ProductID()]; ok {
				snap.ProductName = p.Name
				snap.ProductPrice = p.Price
			}
		}
	})
	return snap, err
}

func (r *memReads) ProductByID(_ context.Context, id uuid.UUID) (p *shared.ProductSnapshot, err error) {
	r.view(func(s *memState) {
		var ok bool
		if p, ok = s.products[id]; !ok {
			err = notFound("product")
		}
	})
	return p, err
}

func (r *memReads) OrderByID(_ context.Context, id uuid.UUID) (o *order.Order, err error) {
	r.view(func(s *memState) {
		var ok bool
		if o, ok = s.orders[id]; !ok {
			err = notFound("order")
		}
	})
	return o, err
}

func (r *memReads) PaymentByInvoice(_ context.Context, provider payment.Provider, invoiceID string) (p *payment.Payment, err error) {
	r.view(func(s *memState) {
		for _, cand := range s.payments {
			if cand.Provider() == provider && cand.InvoiceID() == invoiceID {
				p = cand
				return
			}
		}
		err = notFound("payment")
	})
	return p, err
}

func (r *memReads) LatestPaymentByInvoiceID(_ context.Context, invoiceID string) (p *payment.Payment, err error) {
	r.view(func(s *memState) {
		for _, cand := range s.payments {
			if cand.InvoiceID() == invoiceID && (p == nil || cand.CreatedAt().After(p.CreatedAt())) {
				p = cand
			}
		}
		if p == nil {
			err = notFound("payment")
		}
	})
	return p, err
}

func (r *memReads) SaleByPaymentID(_ context.Context, paymentID uuid.UUID) (sale *order.Sale, err error) {
	r.view(func(s *memState) {
		var ok bool
		if sale, ok = s.sales[paymentID]; !ok {
			err = notFound("sale")
		}
	})
	return sale, err
}

func (r *memReads) ReferrerByCode(_ context.Context, code string) (ref *referrer.Referrer, err error) {
	r.view(func(s *memState) {
		for _, cand := range s.referrers {
			if cand.Code() == code {
				ref = cand
				return
			}
		}
		err = notFound("referrer")
	})
	return ref, err
}

func (r *memReads) ReferrerByID(_ context.Context, id uuid.UUID) (ref *referrer.Referrer, err error) {
	r.view(func(s *memState) {
		var ok bool
		if ref, ok = s.referrers[id]; !ok {
			err = notFound("referrer")
		}
	})
	return ref, err
}

// device side

type fakePresence map[string]bool

func (p fakePresence) IsOnline(id string) bool { return p[id] }

type unlockCall struct {
	DeviceID      string
	Cell          int
	CorrelationID string
}

type fakeUnlocker struct {
	mu     sync.Mutex
	calls  []unlockCall
	result device.DispatchResult
	err    error
}

func (f *fakeUnlocker) SendUnlock(_ context.Context, deviceID string, cellNumber int, correlationID string) (device.DispatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, unlockCall{DeviceID: deviceID, Cell: cellNumber, CorrelationID: correlationID})
	if f.result == "" {
		return device.Sent, nil
	}
	return f.result, nil
}

func (f *fakeUnlocker) Calls() []unlockCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]unlockCall(nil), f.calls...)
}

// payment side

type fakeProvider struct {
	name      payment.Provider
	events    map[string]payment.Event // signature -> event
	status    payment.Event
	statusErr error
	parseErr  error
	invoice   shared.Invoice
	invoices  []shared.InvoiceRequest
}

func (p *fakeProvider) Name() payment.Provider { return p.name }

func (p *fakeProvider) ParseEvent(_ context.Context, _ []byte, signature string) (payment.Event, error) {
	if p.parseErr != nil {
		return payment.Event{}, p.parseErr
	}
	ev, ok := p.events[signature]
	if !ok {
		return payment.Event{}, errs.Wrap(errs.ErrUnauthenticated, "bad signature")
	}
	return ev, nil
}

func (p *fakeProvider) CreateInvoice(_ context.Context, req shared.InvoiceRequest) (shared.Invoice, error) {
	p.invoices = append(p.invoices, req)
	return p.invoice, nil
}

func (p *fakeProvider) FetchStatus(_ context.Context, _ string) (payment.Event, error) {
	return p.status, p.statusErr
}

type providerSet map[payment.Provider]shared.PaymentProvider

func (s providerSet) Get(name payment.Provider) (shared.PaymentProvider, bool) {
	p, ok := s[name]
	return p, ok
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []shared.SaleNotification
	err  error
}

func (n *fakeNotifier) NotifySale(_ context.Context, s shared.SaleNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, s)
	return n.err
}

func (n *fakeNotifier) Sent() []shared.SaleNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shared.SaleNotification(nil), n.sent...)
}
