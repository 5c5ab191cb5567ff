package handler

import (
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service aggregating.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: GetAvailableMonths(service),
		},
		{
			Path:    "/v1/reports/:month",
			Method:  http.MethodGet,
			Handler: GetMonthlyReport(service),
		},
		{
			Path:    "/v1/reports/:month/comparison",
			Method:  http.MethodGet,
			Handler: GetMonthComparison(service),
		},
		{
			Path:    "/v1/reports/:month/rollups/:dimension",
			Method:  http.MethodGet,
			Handler: GetRollup(service),
		},
		{
			Path:    "/v1/reports/:month/rankings",
			Method:  http.MethodGet,
			Handler: GetRanking(service),
		},
		{
			Path:    "/v1/reports/:month/retention",
			Method:  http.MethodGet,
			Handler: GetRetention(service),
		},
		{
			Path:    "/v1/reports/:month/detail",
			Method:  http.MethodGet,
			Handler: GetDetailFacet(service),
		},
	}
}

func Trends(service aggregating.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/trends/:month/staff",
			Method:  http.MethodGet,
			Handler: GetStaffTrend(service),
		},
		{
			Path:    "/v1/trends/:month/distribution",
			Method:  http.MethodGet,
			Handler: GetMetricDistribution(service),
		},
	}
}

func Datasets(adapter *source.FilesystemAdapter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/import",
			Method:  http.MethodPost,
			Handler: ImportDataset(adapter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
