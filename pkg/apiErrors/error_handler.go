package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (requisição do chamador)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Parâmetros obrigatórios ausentes
	ErrInvalidMonthFormat  = "VAL_003" // Mês fora do formato YYYY-MM
	ErrUnknownMetric       = "VAL_004" // Métrica desconhecida para ranking/tendência
	ErrUnknownDimension    = "VAL_005" // Dimensão de rollup desconhecida

	// Erros de dados de origem
	ErrMonthNotFound  = "SRC_001" // Nenhum dado para o mês solicitado
	ErrMalformedFacet = "SRC_002" // Facet presente mas com estrutura inválida
	ErrSourceIO       = "SRC_003" // Falha de leitura no adaptador de origem

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação no cache de relatórios
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidMonthFormat:  http.StatusBadRequest,
	ErrUnknownMetric:       http.StatusBadRequest,
	ErrUnknownDimension:    http.StatusBadRequest,
	ErrMonthNotFound:       http.StatusNotFound,
	ErrMalformedFacet:      http.StatusUnprocessableEntity,
	ErrSourceIO:            http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
