//go:build unit

package payment_test

import (
	"testing"
	"time"

	"ortomat-backend/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		status   payment.Status
		success  bool
		failure  bool
		terminal bool
	}{
		{payment.StatusCreated, false, false, false},
		{payment.StatusProcessing, false, false, false},
		{payment.StatusHold, false, false, false},
		{payment.StatusSuccess, true, false, true},
		{payment.StatusFailure, false, true, true},
		{payment.StatusReversed, false, true, true},
		{payment.StatusExpired, false, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			st, err := payment.NewStatus(tc.status.String())
			require.NoError(t, err)
			assert.Equal(t, tc.success, st.IsSuccess())
			assert.Equal(t, tc.failure, st.IsFailure())
			assert.Equal(t, tc.terminal, st.IsTerminal())
		})
	}

	_, err := payment.NewStatus("paid")
	require.ErrorIs(t, err, payment.ErrInvalidStatus)
}

func TestNewEvent(t *testing.T) {
	now := time.Now()

	ev, err := payment.NewEvent(payment.ProviderAcquirer, " inv-1 ", "success", 4200, now)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", ev.InvoiceID)
	assert.Equal(t, payment.StatusSuccess, ev.Status)

	_, err = payment.NewEvent(payment.ProviderAcquirer, "", "success", 4200, now)
	require.ErrorIs(t, err, payment.ErrInvalidEvent)

	_, err = payment.NewEvent(payment.ProviderAcquirer, "inv-1", "bogus", 4200, now)
	require.ErrorIs(t, err, payment.ErrInvalidStatus)
}

func TestPaymentIsStale(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := func(at time.Time) payment.Event {
		return payment.Event{InvoiceID: "inv", Status: payment.StatusSuccess, ModifiedAt: at}
	}

	fresh := payment.ReconstructPayment(uuid.New(), payment.ProviderAcquirer, "inv", "", 100,
		payment.StatusCreated, payment.Details{}, nil, nil, base)
	assert.False(t, fresh.IsStale(ev(base.Add(-time.Hour))), "no stored timestamp")

	seen := base
	p := payment.ReconstructPayment(uuid.New(), payment.ProviderAcquirer, "inv", "", 100,
		payment.StatusProcessing, payment.Details{}, &seen, nil, base)

	assert.True(t, p.IsStale(ev(base.Add(-time.Second))))
	assert.False(t, p.IsStale(ev(base)), "equal timestamps are applied")
	assert.False(t, p.IsStale(ev(base.Add(time.Second))))
	assert.False(t, p.IsStale(ev(time.Time{})))
}

func TestDetailsRoundTrip(t *testing.T) {
	referrer := uuid.New()
	d := payment.Details{
		OrderID:        uuid.New(),
		ProductID:      uuid.New(),
		LockerID:       uuid.New(),
		CellNumber:     3,
		DeviceID:       "D1",
		ReferralCode:   "DOC42",
		ReferrerID:     &referrer,
		CommissionRate: "10",
	}

	b, err := d.Marshal()
	require.NoError(t, err)
	got, err := payment.UnmarshalDetails(b)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	empty, err := payment.UnmarshalDetails(nil)
	require.NoError(t, err)
	assert.Equal(t, payment.Details{}, empty)
}
