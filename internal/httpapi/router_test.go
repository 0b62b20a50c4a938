package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"result_ingestor/internal/domain"
	"result_ingestor/internal/metrics"
)

type stubService struct {
	response  domain.ResultResponse
	completed []domain.ResultEventMapping
	stats     *domain.IngestStats
	state     *domain.IngestState
	err       error

	compType   string
	apiEventID string
}

func (s *stubService) RetrieveResults(_ context.Context, compType string) domain.ResultResponse {
	s.compType = compType
	return s.response
}

func (s *stubService) RetrieveCompletedResults(context.Context) ([]domain.ResultEventMapping, error) {
	return s.completed, s.err
}

func (s *stubService) Ingest(_ context.Context, compType string) (*domain.IngestStats, error) {
	s.compType = compType
	return s.stats, s.err
}

func (s *stubService) ResetResult(_ context.Context, apiEventID string) error {
	s.apiEventID = apiEventID
	return s.err
}

func (s *stubService) IngestState(_ context.Context, compType string) (*domain.IngestState, error) {
	s.compType = compType
	return s.state, s.err
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

type RouterTestSuite struct {
	suite.Suite
	service *stubService
	db      *stubPinger
	metrics *metrics.Manager
	router  *gin.Engine
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterTestSuite) SetupTest() {
	s.service = &stubService{}
	s.db = &stubPinger{}
	s.metrics = metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
	s.router = NewRouter(RouterConfig{
		Service: s.service,
		DB:      s.db,
		Metrics: s.metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *RouterTestSuite) TestRetrieveResults_OK() {
	start := time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC)
	s.service.response = domain.ResultResponse{
		ResultEvent: []domain.ResultEvent{{
			HomeTeam:    "Arsenal",
			AwayTeam:    "Chelsea",
			EventDesc:   "Arsenal vs Chelsea",
			StartTime:   start,
			Score:       "3-1",
			Competition: "EPL",
		}},
		StatusCode: domain.StatusOK,
	}

	rec := s.do(http.MethodGet, "/result/retrieveResults?compType=soccer_epl")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("soccer_epl", s.service.compType)

	var body domain.ResultResponse
	s.decode(rec, &body)
	s.Equal(domain.StatusOK, body.StatusCode)
	s.Require().Len(body.ResultEvent, 1)
	s.Equal("Arsenal vs Chelsea", body.ResultEvent[0].EventDesc)
	s.True(start.Equal(body.ResultEvent[0].StartTime))
}

func (s *RouterTestSuite) TestRetrieveResults_ProviderFailureStillOK() {
	s.service.response = domain.ResultResponse{
		StatusCode:    domain.StatusProviderUnavailable,
		ResultMessage: domain.MsgProviderUnavailable,
	}

	rec := s.do(http.MethodGet, "/result/retrieveResults?compType=soccer_epl")

	s.Equal(http.StatusOK, rec.Code)
	var body domain.ResultResponse
	s.decode(rec, &body)
	s.Equal(domain.StatusProviderUnavailable, body.StatusCode)
	s.Equal(domain.MsgProviderUnavailable, body.ResultMessage)
	s.Empty(body.ResultEvent)
}

func (s *RouterTestSuite) TestRetrieveResults_MissingCompType() {
	rec := s.do(http.MethodGet, "/result/retrieveResults")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Empty(s.service.compType)
}

func (s *RouterTestSuite) TestRetrieveCompletedResults() {
	s.service.completed = []domain.ResultEventMapping{
		{EventID: 1, APIEventID: "a", Completed: true},
		{EventID: 2, APIEventID: "b", Completed: true},
	}

	rec := s.do(http.MethodGet, "/result/retrieveCompletedResults")

	s.Equal(http.StatusOK, rec.Code)
	var body []domain.ResultEventMapping
	s.decode(rec, &body)
	s.Len(body, 2)
	s.Equal("a", body[0].APIEventID)
}

func (s *RouterTestSuite) TestRetrieveCompletedResults_Empty() {
	s.service.completed = []domain.ResultEventMapping{}

	rec := s.do(http.MethodGet, "/result/retrieveCompletedResults")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *RouterTestSuite) TestRetrieveCompletedResults_StoreError() {
	s.service.err = domain.ErrStoreUnavailable

	rec := s.do(http.MethodGet, "/result/retrieveCompletedResults")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *RouterTestSuite) TestIngest_StatusMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"provider", fmt.Errorf("fetch: %w", domain.ErrProviderUnavailable), http.StatusBadGateway},
		{"mapping", fmt.Errorf("map: %w", domain.ErrMappingFailed), http.StatusUnprocessableEntity},
		{"store", fmt.Errorf("save: %w", domain.ErrStoreUnavailable), http.StatusInternalServerError},
		{"score", fmt.Errorf("classify: %w", domain.ErrInvalidScore), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.service.stats = &domain.IngestStats{CompType: "soccer_epl", Applied: 2}
			s.service.err = tt.err

			rec := s.do(http.MethodPost, "/result/ingest?compType=soccer_epl")

			s.Equal(tt.status, rec.Code)
			if tt.err == nil {
				var body domain.IngestStats
				s.decode(rec, &body)
				s.Equal(2, body.Applied)
			}
		})
	}
}

func (s *RouterTestSuite) TestIngest_MissingCompType() {
	rec := s.do(http.MethodPost, "/result/ingest")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestReset() {
	rec := s.do(http.MethodPost, "/result/reset?apiEventId=api-1")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("api-1", s.service.apiEventID)
	s.JSONEq(`{"reset":true}`, rec.Body.String())
}

func (s *RouterTestSuite) TestReset_NotFound() {
	s.service.err = fmt.Errorf("mapping x: %w", domain.ErrNotFound)

	rec := s.do(http.MethodPost, "/result/reset?apiEventId=x")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"reset":false}`, rec.Body.String())
}

func (s *RouterTestSuite) TestReset_StoreError() {
	s.service.err = errors.New("conn refused")

	rec := s.do(http.MethodPost, "/result/reset?apiEventId=x")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *RouterTestSuite) TestReady() {
	rec := s.do(http.MethodGet, "/readyz")
	s.Equal(http.StatusOK, rec.Code)

	s.db.err = errors.New("connection refused")
	rec = s.do(http.MethodGet, "/readyz")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RouterTestSuite) TestMetricsEndpointCountsRequests() {
	s.service.response = domain.ResultResponse{StatusCode: domain.StatusOK}
	s.do(http.MethodGet, "/result/retrieveResults?compType=soccer_epl")

	rec := s.do(http.MethodGet, "/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(),
		`oasisbet_results_http_requests_total{endpoint="/result/retrieveResults",method="GET",status_code="200"} 1`)
}

func (s *RouterTestSuite) TestIngestState() {
	s.service.state = &domain.IngestState{CompType: "soccer_epl", LastStatusCode: 1, TotalApplied: 4}

	rec := s.do(http.MethodGet, "/result/ingestState?compType=soccer_epl")

	s.Equal(http.StatusOK, rec.Code)
	var body domain.IngestState
	s.decode(rec, &body)
	s.Equal(int64(4), body.TotalApplied)
	s.Equal(1, body.LastStatusCode)
}
