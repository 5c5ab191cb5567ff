package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func rollupRoute(month, dimension string) httprouter.Params {
	return httprouter.Params{
		{Key: "month", Value: month},
		{Key: "dimension", Value: dimension},
	}
}

func TestGetRollupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		GetRollup(domain.MonthKey("2024-09"), domain.DimensionBranch, nil).
		Return([]domain.RollupRow{
			{Key: "大阪", CallCount: 40},
			{Key: "東京", CallCount: 110},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rollups/branch", nil)
	req = withRouteParams(req, rollupRoute("2024-09", "branch"))
	rec := httptest.NewRecorder()

	GetRollup(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, "大阪", body[0]["key"])
}

func TestGetRollupHandlerDimensaoDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/2024-09/rollups/planeta", nil)
	req = withRouteParams(req, rollupRoute("2024-09", "planeta"))
	rec := httptest.NewRecorder()

	GetRollup(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownDimension, decodeAPIError(t, rec).Code)
}

func TestGetRollupHandlerMesInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/09-2024/rollups/staff", nil)
	req = withRouteParams(req, rollupRoute("09-2024", "staff"))
	rec := httptest.NewRecorder()

	GetRollup(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidMonthFormat, decodeAPIError(t, rec).Code)
}
