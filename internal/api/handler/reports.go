package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// GetAvailableMonths retorna os meses com dados na origem
func GetAvailableMonths(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("months: buscando meses disponíveis")

		available, err := service.GetAvailableMonths()
		if err != nil {
			logger.WithError(err).Error("months: erro ao buscar meses disponíveis")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"total_months": len(available.Months),
			"years":        available.Years,
		}).Info("months: meses disponíveis recuperados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(available); err != nil {
			logger.WithError(err).Error("months: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetMonthlyReport retorna o relatório analítico completo de um mês
func GetMonthlyReport(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		filters := filtersFromQuery(r)

		logger.WithField("month", month).Info("reports: montando relatório mensal")

		report, err := service.GetMonthlyReport(month, filters)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("reports: erro ao montar relatório mensal")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":       month,
			"staff_rows":  len(report.Staff),
			"branch_rows": len(report.Branch),
		}).Info("reports: relatório mensal montado com sucesso")

		// Arredondamento só aqui, na borda de apresentação
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report.Rounded()); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetMonthComparison retorna a comparação multi-mês terminando no mês da rota
func GetMonthComparison(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		months, err := intQuery(r, "months", 3)
		if err != nil || months < 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro months deve ser um inteiro positivo", nil)
			return
		}

		filters := filtersFromQuery(r)

		logger.WithFields(log.Fields{
			"month":  month,
			"months": months,
		}).Info("reports: montando comparação multi-mês")

		entries, err := service.GetMonthComparison(month, months, filters)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("reports: erro ao montar comparação multi-mês")
			writeServiceError(w, err)
			return
		}

		withData := 0
		for i, entry := range entries {
			if entry.HasData {
				withData++
			}
			rounded := entry.Rounded()
			entries[i] = &rounded
		}

		logger.WithFields(log.Fields{
			"month":            month,
			"window":           len(entries),
			"months_with_data": withData,
		}).Info("reports: comparação multi-mês montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
