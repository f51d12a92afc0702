package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/fsdevblog/loyalty-pro/internal/logger"
	"github.com/fsdevblog/loyalty-pro/internal/transport/api/mocks"
	"github.com/fsdevblog/loyalty-pro/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type InsightsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockLedgerService  *mocks.MockLedgerServicer
	mockInsightService *mocks.MockInsightServicer
}

func TestInsightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}

func (s *InsightsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)
	s.mockInsightService = mocks.NewMockInsightServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		LedgerService:  s.mockLedgerService,
		InsightService: s.mockInsightService,
	})
}

func (s *InsightsHandlerTestSuite) makeRequest(username, payload string) *http.Response {
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/admins/" + username + "/insights",
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithHeader("Content-Type", "application/json"))
}

func (s *InsightsHandlerTestSuite) TestCreate() {
	customers := []domain.Customer{{Mobile: "9999999999", Points: 15}}
	prompt := "Who is my best customer?"

	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "bob").Return(customers, nil)
	s.mockInsightService.EXPECT().
		CustomerInsights(gomock.Any(), customers, prompt).
		Return("Your best customer is CUST-9999.", nil)

	resp := s.makeRequest("bob", `{"prompt":"`+prompt+`"}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var payload struct {
		Insights string `json:"insights"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Equal("Your best customer is CUST-9999.", payload.Insights)
}

func (s *InsightsHandlerTestSuite) TestCreateUnknownAdmin() {
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "nobody").Return(nil, domain.ErrAdminNotFound)
	// До генератора инсайтов дело не доходит.
	s.mockInsightService.EXPECT().CustomerInsights(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.makeRequest("nobody", `{"prompt":"Any trends?"}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *InsightsHandlerTestSuite) TestCreateServiceUnavailable() {
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "bob").Return([]domain.Customer{{Mobile: "1"}}, nil)
	s.mockInsightService.EXPECT().
		CustomerInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.ErrInsightUnavailable)

	resp := s.makeRequest("bob", `{"prompt":"Any trends?"}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *InsightsHandlerTestSuite) TestCreateUpstreamError() {
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), "bob").Return([]domain.Customer{{Mobile: "1"}}, nil)
	s.mockInsightService.EXPECT().
		CustomerInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.NewUpstreamError(errors.New("model is down")))

	resp := s.makeRequest("bob", `{"prompt":"Any trends?"}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadGateway, resp.StatusCode)
}

func (s *InsightsHandlerTestSuite) TestCreateEmptyPrompt() {
	s.mockLedgerService.EXPECT().Customers(gomock.Any(), gomock.Any()).Times(0)

	resp := s.makeRequest("bob", `{"prompt":""}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}
