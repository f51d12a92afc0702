package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/fsdevblog/loyalty-pro/internal/logger"
	"github.com/fsdevblog/loyalty-pro/internal/service"
	"github.com/fsdevblog/loyalty-pro/internal/transport/api/mocks"
	"github.com/fsdevblog/loyalty-pro/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomersHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
}

func TestCustomersHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomersHandlerTestSuite))
}

func (s *CustomersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		LedgerService: s.mockLedgerService,
	})
}

func (s *CustomersHandlerTestSuite) TestIndex() {
	customers := []domain.Customer{{
		Mobile:     "9999999999",
		Name:       "A",
		PIN:        "1111",
		Points:     15,
		TotalSpent: decimal.NewFromInt(150),
		History: []domain.HistoryEntry{
			{Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), Bill: decimal.NewFromInt(150), Points: 15},
		},
	}}

	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "bob").Return(customers, nil)
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "empty").Return([]domain.Customer{}, nil)
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "nobody").Return(nil, domain.ErrAdminNotFound)

	cases := []struct {
		name       string
		username   string
		wantStatus int
		wantCount  int
	}{
		{name: "with customers", username: "bob", wantStatus: http.StatusOK, wantCount: 1},
		{name: "empty list is not an error", username: "empty", wantStatus: http.StatusOK, wantCount: 0},
		{name: "unknown admin", username: "nobody", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + "/admins/" + t.username + "/customers",
			})
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			if t.wantStatus != http.StatusOK {
				return
			}

			var payload struct {
				Customers []CustomerResponse `json:"customers"`
			}
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
			s.Require().NotNil(payload.Customers)
			s.Require().Len(payload.Customers, t.wantCount)

			if t.wantCount > 0 {
				got := payload.Customers[0]
				s.Equal("9999999999", got.Mobile)
				s.Equal("A", got.Name)
				s.Equal(int64(15), got.Points)
				s.InDelta(150, got.TotalSpent, 0.0001)
				s.Len(got.History, 1)
			}
		})
	}
}

func (s *CustomersHandlerTestSuite) TestCreateTransaction() {
	var gotDraft service.CustomerDraft
	var gotTransaction domain.Transaction

	s.mockLedgerService.EXPECT().
		ApplyTransaction(gomock.Any(), "bob", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, draft service.CustomerDraft, transaction domain.Transaction) error {
			gotDraft = draft
			gotTransaction = transaction
			return nil
		})
	s.mockLedgerService.EXPECT().
		ApplyTransaction(gomock.Any(), "nobody", gomock.Any(), gomock.Any()).
		Return(domain.ErrAdminNotFound)

	cases := []struct {
		name       string
		username   string
		payload    string
		wantStatus int
	}{
		{
			name:       "ok",
			username:   "bob",
			payload:    `{"mobile":"9999999999","name":"A","pin":"1111","bill":100,"points":10}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "unknown admin",
			username:   "nobody",
			payload:    `{"mobile":"9999999999","bill":100,"points":10}`,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "missing mobile",
			username:   "bob",
			payload:    `{"bill":100,"points":10}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/admins/" + t.username + "/transactions",
				Body:   bytes.NewBufferString(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(t.wantStatus, resp.StatusCode)
		})
	}

	s.Equal(service.CustomerDraft{Mobile: "9999999999", Name: "A", PIN: "1111"}, gotDraft)
	s.True(gotTransaction.Bill.Equal(decimal.NewFromInt(100)))
	s.Equal(int64(10), gotTransaction.Points)
}
