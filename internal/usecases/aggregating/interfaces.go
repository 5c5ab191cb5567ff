package aggregating

import (
	"encoding/json"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

// Reporter é o contrato do pipeline de agregação consumido pela camada HTTP.
// Todos os métodos recebem o mês alvo e devolvem estruturas tabulares simples;
// nenhum tipo interno do pipeline vaza além do pacote domain.
type Reporter interface {
	// GetAvailableMonths retorna os meses com dados na origem, do mais
	// recente para o mais antigo
	GetAvailableMonths() (*domain.AvailableMonths, error)

	// GetMonthlyReport monta o relatório completo de um mês
	GetMonthlyReport(month domain.MonthKey, filters *domain.ReportFilters) (*domain.MonthlyReport, error)

	// GetMonthComparison re-executa o rollup de cada mês da janela de forma
	// independente; um mês quebrado é pulado, nunca derruba os demais
	GetMonthComparison(month domain.MonthKey, months int, filters *domain.ReportFilters) ([]*domain.MonthComparisonEntry, error)

	// GetRollup calcula o rollup de uma única dimensão
	GetRollup(month domain.MonthKey, dimension domain.Dimension, filters *domain.ReportFilters) ([]domain.RollupRow, error)

	// GetRanking ordena o rollup por operador pela métrica e atribui posição
	// por competição (empates dividem posição)
	GetRanking(month domain.MonthKey, metric string, limit int, minDeals int, filters *domain.ReportFilters) ([]domain.RankedRow, error)

	// GetStaffTrend monta a série temporal por operador preservando lacunas
	GetStaffTrend(month domain.MonthKey, metric string, months int, filters *domain.ReportFilters) (*domain.StaffTrend, error)

	// GetMetricDistribution monta os histogramas mensais com bordas de bin
	// compartilhadas entre os meses da janela
	GetMetricDistribution(month domain.MonthKey, metric string, months int, filters *domain.ReportFilters) (*domain.MetricHistogram, error)

	// GetRetention retorna o relatório de retenção do mês
	GetRetention(month domain.MonthKey) (*domain.RetentionReport, error)

	// GetDetailFacet repassa o facet 詳細分析 bruto
	GetDetailFacet(month domain.MonthKey) (json.RawMessage, error)
}
