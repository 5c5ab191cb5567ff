package domain

// DealSummary agrega os números de negociação vindos do TAAAN para um valor
// de dimensão (operador, branch ou produto). Sempre vem do export 月次サマリー
// ou dos totais por operador de 基本分析 — nunca é derivado de ActivityRecord.
type DealSummary struct {
	TotalDeals            int     `json:"total_deals"`
	TotalApproved         int     `json:"total_approved"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`
}

// DealKeyMetrics são os totais do mês inteiro reportados pelo TAAAN
type DealKeyMetrics struct {
	TotalDeals    int     `json:"total_deals"`
	TotalApproved int     `json:"total_approved"`
	TotalRevenue  float64 `json:"total_revenue"`
}
