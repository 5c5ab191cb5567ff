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

func TestGetRankingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []domain.RankedRow{
		{Rank: 1, RollupRow: domain.RollupRow{Key: "田中", CallCount: 120}},
		{Rank: 1, RollupRow: domain.RollupRow{Key: "佐藤", CallCount: 120}},
		{Rank: 3, RollupRow: domain.RollupRow{Key: "鈴木", CallCount: 80}},
	}

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		GetRanking(domain.MonthKey("2024-09"), "call_count", 10, 0, nil).
		Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rankings?metric=call_count&limit=10", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetRanking(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body, 3)
	// Empate divide a posição
	assert.Equal(t, float64(1), body[0]["rank"])
	assert.Equal(t, float64(1), body[1]["rank"])
	assert.Equal(t, float64(3), body[2]["rank"])
}

func TestGetRankingHandlerSemMetrica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rankings", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetRanking(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestGetRankingHandlerMetricaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rankings?metric=inexistente", nil)
	req = withRouteParams(req, monthRoute("2024-09"))
	rec := httptest.NewRecorder()

	GetRanking(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownMetric, decodeAPIError(t, rec).Code)
}

func TestGetRankingHandlerLimitInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	tests := []struct {
		name  string
		query string
	}{
		{name: "Limit negativo", query: "?metric=call_count&limit=-1"},
		{name: "Limit não numérico", query: "?metric=call_count&limit=dez"},
		{name: "Min deals negativo", query: "?metric=call_count&min_deals=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rankings"+tt.query, nil)
			req = withRouteParams(req, monthRoute("2024-09"))
			rec := httptest.NewRecorder()

			GetRanking(service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
		})
	}
}
