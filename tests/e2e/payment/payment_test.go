//go:build e2e

package payment_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"ortomat-backend/internal/handler/dto/request"
	"ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/pkg/secret"
	"ortomat-backend/tests/common/authtest"
	"ortomat-backend/tests/common/builder"
	"ortomat-backend/tests/common/dbtest"
	"ortomat-backend/tests/common/httptest"
	"ortomat-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	paymentsURL = "/api/payments"
	webhookURL  = "/api/payments/webhook/internal"
	syncURL     = "/api/payments/%s/sync"
)

type PaymentSuite struct {
	e2e.SharedSuite
}

func (s *PaymentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PaymentSuite))
}

// stockedLocker creates a locker through the API and stocks cell 1 with the seed product.
func (s *PaymentSuite) stockedLocker() uuid.UUID {
	t := s.T()
	admin := authtest.NewJWTHelper(s.Config.JWT).Admin(t)
	body := builder.NewLockerBuilder().With(func(b *builder.LockerBuilder) { b.CellCount = 2 }).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/lockers", body, admin)
	var l response.LockerResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &l)

	dbtest.StockCell(t, s.DB, l.ID, 1, dbtest.SeedProductID)
	return l.ID
}

func (s *PaymentSuite) initiate(lockerID uuid.UUID, referralCode string) response.PurchaseResponse {
	t := s.T()
	req := request.InitiatePurchaseRequest{
		LockerID:     lockerID,
		CellNumber:   1,
		Provider:     "internal",
		ReferralCode: referralCode,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, req, "")
	var res response.PurchaseResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *PaymentSuite) callback(invoiceID, status string, amount int64, modified time.Time) []byte {
	body, err := json.Marshal(map[string]any{
		"invoiceId":    invoiceID,
		"status":       status,
		"amount":       amount,
		"modifiedDate": modified.UTC().Format(time.RFC3339Nano),
	})
	require.NoError(s.T(), err)
	return body
}

func (s *PaymentSuite) deliver(body []byte) int {
	sig := secret.SignHMAC([]byte(s.Config.Payment.InternalSecret), body)
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, body, map[string]string{
		"Content-Type": "application/json",
		"X-Signature":  sig,
	})
	return w.Code
}

func (s *PaymentSuite) orderStatus(orderID uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(context.Background(), "SELECT status FROM orders WHERE id = $1", orderID).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

// =============================================================================
// TestInitiatePurchase
// =============================================================================

func (s *PaymentSuite) TestInitiatePurchase() {
	s.Run("stocked cell yields an internal invoice", func() {
		t := s.T()
		lockerID := s.stockedLocker()

		res := s.initiate(lockerID, "")

		require.Equal(t, int64(4500), res.Amount)
		require.Contains(t, res.InvoiceID, "int_")
		require.Contains(t, res.PageURL, res.InvoiceID)
		require.Equal(t, "pending", s.orderStatus(res.OrderID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("empty cell is not for sale", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		req := request.InitiatePurchaseRequest{LockerID: lockerID, CellNumber: 2, Provider: "internal"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, req, "")

		env := httptest.AssertErrorCode(t, w, http.StatusConflict, "cell_not_for_sale")
		require.Equal(t, "only stocked cells can be purchased", env.Detail.Hint)
		require.Zero(t, dbtest.CountRows(t, s.DB, "orders"))
	})

	s.Run("unknown provider", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		req := request.InitiatePurchaseRequest{LockerID: lockerID, CellNumber: 1, Provider: "cash-in-hand"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, req, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Unknown payment provider")
	})
}

// =============================================================================
// TestWebhook
// =============================================================================

func (s *PaymentSuite) TestWebhook() {
	s.Run("successful payment records one sale and empties the cell", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")

		body := s.callback(p.InvoiceID, "success", p.Amount, time.Now())
		require.Equal(t, http.StatusOK, s.deliver(body))

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "sales"))
		require.Equal(t, "completed", s.orderStatus(p.OrderID))
		require.Equal(t, "assigned_empty", dbtest.CellOccupancy(t, s.DB, lockerID, 1))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_logs"))

		// redelivery of the same event is acknowledged without a second sale
		require.Equal(t, http.StatusOK, s.deliver(body))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "sales"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_logs"))
	})

	s.Run("concurrent deliveries settle once", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")
		body := s.callback(p.InvoiceID, "success", p.Amount, time.Now())

		const deliveries = 8
		codes := make([]int, deliveries)
		var wg sync.WaitGroup
		for i := 0; i < deliveries; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				codes[i] = s.deliver(body)
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			require.Equal(t, http.StatusOK, code)
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "sales"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_logs"))
	})

	s.Run("failure marks the order failed and keeps the cell stocked", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")

		require.Equal(t, http.StatusOK, s.deliver(s.callback(p.InvoiceID, "failure", p.Amount, time.Now())))

		require.Equal(t, "failed", s.orderStatus(p.OrderID))
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales"))
		require.Equal(t, "stocked", dbtest.CellOccupancy(t, s.DB, lockerID, 1))
	})

	s.Run("older event after a newer one is ignored", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")
		now := time.Now()

		require.Equal(t, http.StatusOK, s.deliver(s.callback(p.InvoiceID, "processing", p.Amount, now)))
		require.Equal(t, http.StatusOK, s.deliver(s.callback(p.InvoiceID, "created", p.Amount, now.Add(-time.Minute))))

		var status string
		err := s.DB.QueryRow(context.Background(), "SELECT status FROM payments WHERE invoice_id = $1", p.InvoiceID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "processing", status)
	})

	s.Run("bad signature is rejected", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")
		body := s.callback(p.InvoiceID, "success", p.Amount, time.Now())

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			"X-Signature": "deadbeef",
		})

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "unauthenticated")
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales"))
		require.Equal(t, "stocked", dbtest.CellOccupancy(t, s.DB, lockerID, 1))
	})

	s.Run("unknown invoice is acknowledged", func() {
		t := s.T()
		body := s.callback("int_missing", "success", 100, time.Now())

		require.Equal(t, http.StatusOK, s.deliver(body))
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales"))
	})

	s.Run("referrer is credited with commission and points", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		refID := dbtest.CreateTestReferrer(t, s.DB, "PHARMA10", "", nil)
		p := s.initiate(lockerID, "PHARMA10")

		require.Equal(t, http.StatusOK, s.deliver(s.callback(p.InvoiceID, "success", p.Amount, time.Now())))
		s.Payments.Wait()

		var commission, points, salesCount int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT commission_total, points, sales_count FROM referrers WHERE id = $1", refID).
			Scan(&commission, &points, &salesCount)
		require.NoError(t, err)
		require.Equal(t, int64(450), commission)
		require.Equal(t, int64(4), points)
		require.Equal(t, int64(1), salesCount)

		var saleCommission int64
		err = s.DB.QueryRow(context.Background(),
			"SELECT commission FROM sales WHERE referrer_id = $1", refID).Scan(&saleCommission)
		require.NoError(t, err)
		require.Equal(t, int64(450), saleCommission)
	})
}

// =============================================================================
// TestSync
// =============================================================================

func (s *PaymentSuite) TestSync() {
	s.Run("internal provider cannot be polled", func() {
		t := s.T()
		lockerID := s.stockedLocker()
		p := s.initiate(lockerID, "")
		admin := authtest.NewJWTHelper(s.Config.JWT).Admin(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(syncURL, p.InvoiceID), nil, admin)

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Provider does not support status polling")
	})

	s.Run("sync requires an admin", func() {
		t := s.T()
		courier := authtest.NewJWTHelper(s.Config.JWT).Courier(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(syncURL, "int_any"), nil, courier)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
