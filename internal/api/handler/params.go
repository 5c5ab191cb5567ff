package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
)

// monthParam extrai e valida o parâmetro de rota :month
func monthParam(w http.ResponseWriter, r *http.Request) (domain.MonthKey, bool) {
	month := httprouter.ParamsFromContext(r.Context()).ByName("month")

	if err := domain.ValidateMonthKey(month); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidMonthFormat, err.Error(), nil)
		return "", false
	}

	return month, true
}

// filtersFromQuery monta os filtros de relatório a partir de parâmetros de
// consulta repetidos (?staff=A&staff=B&branch=X)
func filtersFromQuery(r *http.Request) *domain.ReportFilters {
	query := r.URL.Query()

	staff := query["staff"]
	branches := query["branch"]

	if len(staff) == 0 && len(branches) == 0 {
		return nil
	}

	return &domain.ReportFilters{
		StaffNames: staff,
		Branches:   branches,
	}
}

// intQuery lê um parâmetro de consulta inteiro; ausência devolve o padrão
func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// writeServiceError traduz os erros do pipeline para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == aggregating.ErrMonthNotFound:
		apiErrors.WriteError(w, apiErrors.ErrMonthNotFound, "Nenhum dado para o mês solicitado", nil)
	case err == aggregating.ErrUnknownMetric:
		apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida", nil)
	case err == aggregating.ErrUnknownDimension:
		apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, "Dimensão desconhecida", nil)
	case source.IsMalformed(err):
		apiErrors.WriteError(w, apiErrors.ErrMalformedFacet, err.Error(), nil)
	case source.IsIO(err):
		apiErrors.WriteError(w, apiErrors.ErrSourceIO, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
