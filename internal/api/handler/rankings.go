package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// GetRanking retorna o ranking de operadores pela métrica informada
func GetRanking(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a métrica do ranking", nil)
			return
		}

		if !domain.KnownMetric(metric) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida: "+metric, nil)
			return
		}

		limit, err := intQuery(r, "limit", 0)
		if err != nil || limit < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve ser um inteiro não negativo", nil)
			return
		}

		minDeals, err := intQuery(r, "min_deals", 0)
		if err != nil || minDeals < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro min_deals deve ser um inteiro não negativo", nil)
			return
		}

		filters := filtersFromQuery(r)

		logger.WithFields(log.Fields{
			"month":     month,
			"metric":    metric,
			"limit":     limit,
			"min_deals": minDeals,
		}).Info("rankings: calculando ranking")

		ranked, err := service.GetRanking(month, metric, limit, minDeals, filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":  month,
				"metric": metric,
			}).Error("rankings: erro ao calcular ranking")
			writeServiceError(w, err)
			return
		}

		for i, row := range ranked {
			ranked[i].RollupRow = row.RollupRow.Rounded()
		}

		logger.WithFields(log.Fields{
			"month":  month,
			"metric": metric,
			"rows":   len(ranked),
		}).Info("rankings: ranking calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranked); err != nil {
			logger.WithError(err).Error("rankings: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
