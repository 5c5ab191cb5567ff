package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func metricPtr(v float64) *domain.Metric {
	m := domain.Metric(v)
	return &m
}

func TestGetStaffTrendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		GetStaffTrend(domain.MonthKey("2024-09"), "connect_rate", 3, nil).
		Return(&domain.StaffTrend{
			Metric: "connect_rate",
			Months: []domain.MonthKey{"2024-07", "2024-08", "2024-09"},
			Series: []domain.TrendSeries{
				{StaffName: "田中", Branch: "東京", Values: []*domain.Metric{nil, metricPtr(28.5), metricPtr(30.1)}},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/trends/2024-09/staff?metric=connect_rate", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetStaffTrend(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	series := body["series"].([]any)
	assert.Len(t, series, 1)

	// Mês sem dado aparece como null na série, nunca como 0
	values := series[0].(map[string]any)["values"].([]any)
	assert.Nil(t, values[0])
	assert.Equal(t, 28.5, values[1])
}

func TestGetStaffTrendHandlerSemMetrica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/trends/2024-09/staff", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetStaffTrend(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestGetMetricDistributionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		GetMetricDistribution(domain.MonthKey("2024-09"), "call_count", 2, nil).
		Return(&domain.MetricHistogram{
			Metric:   "call_count",
			BinCount: 5,
			Edges:    []float64{0, 10, 20, 30, 40, 50},
			Months: []domain.MonthHistogram{
				{Month: "2024-08", HasData: false, Counts: []int{0, 0, 0, 0, 0}},
				{Month: "2024-09", N: 12, HasData: true, Counts: []int{1, 3, 5, 2, 1}},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/trends/2024-09/distribution?metric=call_count&months=2", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetMetricDistribution(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.MetricHistogram
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 5, body.BinCount)
	assert.Len(t, body.Months, 2)
	assert.False(t, body.Months[0].HasData)
}

func TestGetMetricDistributionHandlerJanelaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/trends/2024-09/distribution?metric=call_count&months=-2", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetMetricDistribution(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}
