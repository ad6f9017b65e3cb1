//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"ortomat-backend/internal/handler/api"
	resdto "ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/commands"
	"ortomat-backend/internal/usecase/queries"
	"ortomat-backend/tests/common/builder"
	"ortomat-backend/tests/common/httptest"
	"ortomat-backend/tests/common/testutil"
	commandsmock "ortomat-backend/tests/mock/commands"
	queriesmock "ortomat-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LockerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLockerCommands
	mockQueries  *queriesmock.MockLockerQueries
	mockDevices  *queriesmock.MockDeviceQueries
	handler      *api.LockerHandler
}

func (s *LockerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLockerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLockerQueries(s.mockCtrl)
	s.mockDevices = queriesmock.NewMockDeviceQueries(s.mockCtrl)
	s.handler = api.NewLockerHandler(s.mockCommands, s.mockQueries)
	devices := api.NewDeviceHandler(s.mockDevices)

	s.router.POST("/lockers", s.handler.Create)
	s.router.GET("/lockers", s.handler.List)
	s.router.GET("/lockers/:id", s.handler.Get)
	s.router.GET("/lockers/:id/cells", s.handler.ListCells)
	s.router.GET("/lockers/:id/cells/:number/history", s.handler.CellHistory)
	s.router.GET("/devices", devices.List)
}

func (s *LockerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLockerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LockerHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *LockerHandlerTestSuite) TestCreate() {
	url := "/lockers"
	b := builder.NewLockerBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the new locker", func() {
		s.mockCommands.EXPECT().
			CreateLocker(gomock.Any(), commands.CreateLockerRequest{
				Name:      b.Name,
				Address:   b.Address,
				CellCount: b.CellCount,
				DeviceID:  b.DeviceID,
			}).
			Return(b.BuildDomain(), nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.LockerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID, res.ID)
		s.Equal(8, res.CellCount)
		s.Equal("active", res.Status)
	})

	bound := []struct {
		name       string
		mutate     func(map[string]any)
		expectCode int
	}{
		{name: "cell_count boundary OK (1)", mutate: testutil.Field("cell_count", 1), expectCode: http.StatusCreated},
		{name: "cell_count boundary OK (200)", mutate: testutil.Field("cell_count", 200), expectCode: http.StatusCreated},
		{name: "cell_count invalid (0)", mutate: testutil.Field("cell_count", 0), expectCode: http.StatusBadRequest},
		{name: "cell_count invalid (201)", mutate: testutil.Field("cell_count", 201), expectCode: http.StatusBadRequest},
		{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing cell_count", mutate: testutil.Field("cell_count", nil), expectCode: http.StatusBadRequest},
	}
	for _, tc := range bound {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().CreateLocker(gomock.Any(), gomock.Any()).Return(b.BuildDomain(), nil).Times(1)
			}
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("blank name rejected by the domain returns 422", func() {
		s.mockCommands.EXPECT().CreateLocker(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("locker name is required"), errs.ErrDomainValidation)).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", strings.Repeat(" ", 3)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

// ================================================================================
// TestRead
// ================================================================================

func (s *LockerHandlerTestSuite) TestRead() {
	online := builder.NewLockerBuilder().With(func(b *builder.LockerBuilder) { b.Online = true })
	offline := builder.NewLockerBuilder().With(func(b *builder.LockerBuilder) { b.Name = "Clinic Hall"; b.DeviceID = "" })

	s.Run("list copies views including presence", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.LockerView{online.BuildView(), offline.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers", nil, "bearer-token")

		var res []resdto.LockerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.True(res[0].Online)
		s.Equal(online.DeviceID, res[0].DeviceID)
		s.False(res[1].Online)
		s.Equal("Clinic Hall", res[1].Name)
	})

	s.Run("get unknown locker returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, errs.ErrLockerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Locker not found")
	})

	s.Run("get with malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("cells include product details", func() {
		productID := uuid.New()
		restocked := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListCells(gomock.Any(), online.ID).Return([]*queries.CellView{
			{LockerID: online.ID, Number: 1, Occupancy: "vacant"},
			{
				LockerID: online.ID, Number: 2, Occupancy: "stocked", Purchasable: true,
				ProductID: &productID, ProductName: "Ibuprofen 200mg", ProductPrice: 4500,
				LastRestockedAt: &restocked,
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/"+online.ID.String()+"/cells", nil, "")

		var res []resdto.CellResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.False(res[0].Purchasable)
		s.True(res[1].Purchasable)
		s.Equal("Ibuprofen 200mg", res[1].ProductName)
		s.Equal(int64(4500), res[1].ProductPrice)
	})

	s.Run("history clamps the limit", func() {
		s.mockQueries.EXPECT().CellHistory(gomock.Any(), online.ID, 2, queries.Cursor{}, queries.MaxHistoryLimit).
			Return(&queries.HistoryPage{Items: []*queries.AuditLogView{
				{ID: uuid.New(), Action: "cell_opened", Reason: "sale", Mode: "production", Details: map[string]any{"order_number": "ORD-1"}},
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/lockers/"+online.ID.String()+"/cells/2/history?limit=5000", nil, "bearer-token")

		var res resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal("sale", res.Items[0].Reason)
		s.Equal("ORD-1", res.Items[0].Details["order_number"])
		s.Empty(res.NextCursor)
	})

	s.Run("history passes the cursor through and exposes the next one", func() {
		s.mockQueries.EXPECT().CellHistory(gomock.Any(), online.ID, 2, queries.Cursor{After: "abc"}, queries.DefaultHistoryLimit).
			Return(&queries.HistoryPage{
				Items: []*queries.AuditLogView{{ID: uuid.New(), Action: "cell_opened", Reason: "refill", Mode: "demo"}},
				Next:  &queries.Cursor{After: "def"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/lockers/"+online.ID.String()+"/cells/2/history?after=abc", nil, "bearer-token")

		var res resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("def", res.NextCursor)
	})

	s.Run("malformed cursor is a validation error", func() {
		s.mockQueries.EXPECT().CellHistory(gomock.Any(), online.ID, 2, queries.Cursor{After: "zzz"}, queries.DefaultHistoryLimit).
			Return(nil, errs.Mark(errs.New("bad cursor"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/lockers/"+online.ID.String()+"/cells/2/history?after=zzz", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

// ================================================================================
// TestDevices
// ================================================================================

func (s *LockerHandlerTestSuite) TestDevices() {
	s.mockDevices.EXPECT().ListOnline().Return([]*queries.DeviceView{
		{DeviceID: "esp32-lobby-01", Diagnostic: &queries.DiagnosticView{UptimeMs: 1000, WifiRSSI: -61}},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices", nil, "bearer-token")

	var res resdto.DevicesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(1, res.Count)
	s.Equal(-61, res.Devices[0].Diagnostic.WifiRSSI)
}
