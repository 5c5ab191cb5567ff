package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// GetRetention retorna o relatório de retenção de um mês
func GetRetention(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		logger.WithField("month", month).Info("retention: buscando relatório de retenção")

		retention, err := service.GetRetention(month)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("retention: erro ao buscar relatório de retenção")
			writeServiceError(w, err)
			return
		}

		logger.WithField("month", month).Info("retention: relatório de retenção recuperado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(retention); err != nil {
			logger.WithError(err).Error("retention: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
