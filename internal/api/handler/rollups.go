package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// GetRollup retorna o rollup de uma dimensão para um mês
func GetRollup(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		dimension := domain.Dimension(httprouter.ParamsFromContext(r.Context()).ByName("dimension"))
		if !domain.ValidDimension(dimension) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, "Dimensão desconhecida: "+string(dimension), nil)
			return
		}

		filters := filtersFromQuery(r)

		logger.WithFields(log.Fields{
			"month":     month,
			"dimension": dimension,
		}).Info("rollups: calculando rollup")

		rows, err := service.GetRollup(month, dimension, filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":     month,
				"dimension": dimension,
			}).Error("rollups: erro ao calcular rollup")
			writeServiceError(w, err)
			return
		}

		rounded := make([]domain.RollupRow, len(rows))
		for i, row := range rows {
			rounded[i] = row.Rounded()
		}

		logger.WithFields(log.Fields{
			"month":     month,
			"dimension": dimension,
			"rows":      len(rounded),
		}).Info("rollups: rollup calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rounded); err != nil {
			logger.WithError(err).Error("rollups: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
