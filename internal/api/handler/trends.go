package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// trendParams são os parâmetros comuns das rotas de tendência
func trendParams(w http.ResponseWriter, r *http.Request) (month domain.MonthKey, metric string, months int, ok bool) {
	month, ok = monthParam(w, r)
	if !ok {
		return "", "", 0, false
	}

	metric = r.URL.Query().Get("metric")
	if metric == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a métrica", nil)
		return "", "", 0, false
	}

	if !domain.KnownMetric(metric) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida: "+metric, nil)
		return "", "", 0, false
	}

	months, err := intQuery(r, "months", 3)
	if err != nil || months < 1 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro months deve ser um inteiro positivo", nil)
		return "", "", 0, false
	}

	return month, metric, months, true
}

// GetStaffTrend retorna a série temporal da métrica por operador
func GetStaffTrend(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, metric, months, ok := trendParams(w, r)
		if !ok {
			return
		}

		filters := filtersFromQuery(r)

		logger.WithFields(log.Fields{
			"month":  month,
			"metric": metric,
			"months": months,
		}).Info("trends: montando série temporal por operador")

		trend, err := service.GetStaffTrend(month, metric, months, filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":  month,
				"metric": metric,
			}).Error("trends: erro ao montar série temporal")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":  month,
			"metric": metric,
			"series": len(trend.Series),
		}).Info("trends: série temporal montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithError(err).Error("trends: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetMetricDistribution retorna os histogramas mensais da métrica com bordas
// compartilhadas
func GetMetricDistribution(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, metric, months, ok := trendParams(w, r)
		if !ok {
			return
		}

		filters := filtersFromQuery(r)

		logger.WithFields(log.Fields{
			"month":  month,
			"metric": metric,
			"months": months,
		}).Info("trends: montando distribuição da métrica")

		histogram, err := service.GetMetricDistribution(month, metric, months, filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":  month,
				"metric": metric,
			}).Error("trends: erro ao montar distribuição")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":     month,
			"metric":    metric,
			"bin_count": histogram.BinCount,
		}).Info("trends: distribuição montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(histogram); err != nil {
			logger.WithError(err).Error("trends: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
