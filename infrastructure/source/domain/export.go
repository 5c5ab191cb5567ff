// Package domain descreve o formato bruto dos exports mensais, antes da
// normalização para o dataset canônico. Os nomes de campo seguem os arquivos
// JSON exportados byte a byte.
package domain

import "encoding/json"

// BasicAnalysis é o facet 基本分析: atividade diária aninhada por operador
type BasicAnalysis struct {
	MonthlyAnalysis map[string]MonthlyStaffAnalysis `json:"monthly_analysis"`
}

// MonthlyStaffAnalysis agrupa os operadores de um mês
type MonthlyStaffAnalysis struct {
	Staff map[string]StaffActivity `json:"staff"`
}

// StaffActivity é a atividade de um operador no mês, com os totais de
// negociação que o export já traz embutidos
type StaffActivity struct {
	Branch        string          `json:"branch"`
	JoinDate      string          `json:"join_date"`
	TotalDeals    int             `json:"total_deals"`
	TotalApproved int             `json:"total_approved"`
	TotalRevenue  float64         `json:"total_revenue"`
	DailyActivity []DailyActivity `json:"daily_activity"`
}

// DailyActivity é um dia de trabalho: produto principal mais secundários
type DailyActivity struct {
	Date        string            `json:"date"`
	MainProduct *ProductActivity  `json:"main_product"`
	SubProducts []ProductActivity `json:"sub_products"`
}

// ProductActivity são os contadores de um produto em um dia. Campos ausentes
// no JSON decodificam para zero, que é o tratamento esperado.
type ProductActivity struct {
	Product         string  `json:"product"`
	CallCount       int     `json:"call_count"`
	CallHours       float64 `json:"call_hours"`
	ChargeConnected int     `json:"charge_connected"`
	GetAppointment  int     `json:"get_appointment"`
	ReceptionBK     int     `json:"reception_bk"`
	NoOneInCharge   int     `json:"no_one_in_charge"`
	Disconnect      int     `json:"disconnect"`
	ChargeBK        int     `json:"charge_bk"`
}

// MonthlySummary é o facet 月次サマリー: agregados do TAAAN por dimensão
type MonthlySummary struct {
	KeyMetrics          *SummaryKeyMetrics         `json:"key_metrics"`
	StaffPerformance    map[string]DealPerformance `json:"staff_performance"`
	BranchPerformance   map[string]DealPerformance `json:"branch_performance"`
	ProductPerformance  map[string]DealPerformance `json:"product_performance"`
	DealStatusBreakdown map[string]int             `json:"deal_status_breakdown"`
}

// SummaryKeyMetrics são os totais do mês no TAAAN
type SummaryKeyMetrics struct {
	TotalDeals    int     `json:"total_deals"`
	TotalApproved int     `json:"total_approved"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// DealPerformance é o desempenho de negociação de um valor de dimensão
type DealPerformance struct {
	TotalDeals            int     `json:"total_deals"`
	TotalApproved         int     `json:"total_approved"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`
}

// DetailAnalysis é o facet 詳細分析, repassado opaco para a apresentação
type DetailAnalysis = json.RawMessage
