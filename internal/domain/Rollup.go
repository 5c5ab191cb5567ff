package domain

import (
	"github.com/vfg2006/callcenter-analytics-api/pkg/utils"
)

// Dimension é o eixo de agrupamento de um rollup
type Dimension string

const (
	DimensionStaff   Dimension = "staff"
	DimensionBranch  Dimension = "branch"
	DimensionProduct Dimension = "product"
	DimensionMonth   Dimension = "month"
	DimensionTenure  Dimension = "tenure"
)

// ValidDimension informa se a dimensão é conhecida
func ValidDimension(d Dimension) bool {
	switch d {
	case DimensionStaff, DimensionBranch, DimensionProduct, DimensionMonth, DimensionTenure:
		return true
	}
	return false
}

// RollupRow é uma linha agrupada-e-somada de atividade para um valor de
// dimensão, com os números do TAAAN anexados e as razões derivadas.
// As razões são calculadas apenas a partir dos totais da linha, nunca linha a
// linha, e mantêm precisão total — arredondamento só em Rounded().
type RollupRow struct {
	Key    string `json:"key"`
	Branch string `json:"branch,omitempty"` // branch do operador em rollups por staff

	// Somas da atividade do dia a dia
	CallCount        int     `json:"call_count"`
	ConnectedCount   int     `json:"connected_count"`
	AppointmentCount int     `json:"appointment_count"`
	CallHours        float64 `json:"call_hours"`

	// Contagens de apoio para normalização
	UniqueStaffCount int `json:"unique_staff_count"`
	WorkingDays      int `json:"working_days"`

	// Números do TAAAN (zero quando a chave não existe lá — não é erro)
	TotalDeals            int     `json:"total_deals"`
	TotalApproved         int     `json:"total_approved"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`

	// Razões do funil (denominador zero ⇒ 0.0)
	ConnectRate     Metric `json:"connect_rate"`
	AppointmentRate Metric `json:"appointment_rate"`
	ApprovalRate    Metric `json:"approval_rate"`

	// Métricas por unidade (denominador zero ⇒ null)
	CallsPerHour        Metric `json:"calls_per_hour"`
	AppointmentsPerHour Metric `json:"appointments_per_hour"`
	DealsPerHour        Metric `json:"deals_per_hour"`
	RevenuePerHour      Metric `json:"revenue_per_hour"`

	CallsPerDay        Metric `json:"calls_per_working_day"`
	AppointmentsPerDay Metric `json:"appointments_per_working_day"`
	DealsPerDay        Metric `json:"deals_per_working_day"`
	ApprovedPerDay     Metric `json:"approved_per_working_day"`
	RevenuePerDay      Metric `json:"revenue_per_working_day"`

	CallsPerStaff        Metric `json:"calls_per_staff"`
	AppointmentsPerStaff Metric `json:"appointments_per_staff"`
	DealsPerStaff        Metric `json:"deals_per_staff"`
	RevenuePerStaff      Metric `json:"revenue_per_staff"`
}

// ComputeDerived preenche as razões a partir dos totais da própria linha
func (r RollupRow) ComputeDerived() RollupRow {
	r.ConnectRate = PercentRate(float64(r.ConnectedCount), float64(r.CallCount))
	r.AppointmentRate = PercentRate(float64(r.AppointmentCount), float64(r.ConnectedCount))
	r.ApprovalRate = PercentRate(float64(r.TotalApproved), float64(r.TotalDeals))

	r.CallsPerHour = PerUnit(float64(r.CallCount), r.CallHours)
	r.AppointmentsPerHour = PerUnit(float64(r.AppointmentCount), r.CallHours)
	r.DealsPerHour = PerUnit(float64(r.TotalDeals), r.CallHours)
	r.RevenuePerHour = PerUnit(r.TotalRevenue, r.CallHours)

	days := float64(r.WorkingDays)
	r.CallsPerDay = PerUnit(float64(r.CallCount), days)
	r.AppointmentsPerDay = PerUnit(float64(r.AppointmentCount), days)
	r.DealsPerDay = PerUnit(float64(r.TotalDeals), days)
	r.ApprovedPerDay = PerUnit(float64(r.TotalApproved), days)
	r.RevenuePerDay = PerUnit(r.TotalRevenue, days)

	staff := float64(r.UniqueStaffCount)
	r.CallsPerStaff = PerUnit(float64(r.CallCount), staff)
	r.AppointmentsPerStaff = PerUnit(float64(r.AppointmentCount), staff)
	r.DealsPerStaff = PerUnit(float64(r.TotalDeals), staff)
	r.RevenuePerStaff = PerUnit(r.TotalRevenue, staff)

	return r
}

// Rounded devolve uma cópia com as porcentagens arredondadas para uma casa
// decimal — a fronteira de apresentação. NA continua NA.
func (r RollupRow) Rounded() RollupRow {
	r.ConnectRate = roundMetric(r.ConnectRate)
	r.AppointmentRate = roundMetric(r.AppointmentRate)
	r.ApprovalRate = roundMetric(r.ApprovalRate)

	return r
}

func roundMetric(m Metric) Metric {
	return Metric(utils.RoundWithOneDecimalPlace(float64(m)))
}

// rollupMetrics mapeia o nome externo da métrica para o valor na linha.
// Nomes casam com as tags JSON de RollupRow.
var rollupMetrics = map[string]func(RollupRow) float64{
	"call_count":                   func(r RollupRow) float64 { return float64(r.CallCount) },
	"connected_count":              func(r RollupRow) float64 { return float64(r.ConnectedCount) },
	"appointment_count":            func(r RollupRow) float64 { return float64(r.AppointmentCount) },
	"call_hours":                   func(r RollupRow) float64 { return r.CallHours },
	"working_days":                 func(r RollupRow) float64 { return float64(r.WorkingDays) },
	"total_deals":                  func(r RollupRow) float64 { return float64(r.TotalDeals) },
	"total_approved":               func(r RollupRow) float64 { return float64(r.TotalApproved) },
	"total_revenue":                func(r RollupRow) float64 { return r.TotalRevenue },
	"total_potential_revenue":      func(r RollupRow) float64 { return r.TotalPotentialRevenue },
	"connect_rate":                 func(r RollupRow) float64 { return float64(r.ConnectRate) },
	"appointment_rate":             func(r RollupRow) float64 { return float64(r.AppointmentRate) },
	"approval_rate":                func(r RollupRow) float64 { return float64(r.ApprovalRate) },
	"calls_per_hour":               func(r RollupRow) float64 { return float64(r.CallsPerHour) },
	"appointments_per_hour":        func(r RollupRow) float64 { return float64(r.AppointmentsPerHour) },
	"deals_per_hour":               func(r RollupRow) float64 { return float64(r.DealsPerHour) },
	"revenue_per_hour":             func(r RollupRow) float64 { return float64(r.RevenuePerHour) },
	"calls_per_working_day":        func(r RollupRow) float64 { return float64(r.CallsPerDay) },
	"appointments_per_working_day": func(r RollupRow) float64 { return float64(r.AppointmentsPerDay) },
	"deals_per_working_day":        func(r RollupRow) float64 { return float64(r.DealsPerDay) },
	"approved_per_working_day":     func(r RollupRow) float64 { return float64(r.ApprovedPerDay) },
	"revenue_per_working_day":      func(r RollupRow) float64 { return float64(r.RevenuePerDay) },
	"calls_per_staff":              func(r RollupRow) float64 { return float64(r.CallsPerStaff) },
	"appointments_per_staff":       func(r RollupRow) float64 { return float64(r.AppointmentsPerStaff) },
	"deals_per_staff":              func(r RollupRow) float64 { return float64(r.DealsPerStaff) },
	"revenue_per_staff":            func(r RollupRow) float64 { return float64(r.RevenuePerStaff) },
}

// RollupMetric extrai o valor da métrica nomeada; false quando o nome é
// desconhecido.
func RollupMetric(row RollupRow, metric string) (float64, bool) {
	fn, ok := rollupMetrics[metric]
	if !ok {
		return 0, false
	}
	return fn(row), true
}

// KnownMetric informa se o nome de métrica é aceito por rankings e tendências
func KnownMetric(metric string) bool {
	_, ok := rollupMetrics[metric]
	return ok
}

// RankedRow é uma linha de rollup com a posição no ranking por competição:
// valores iguais dividem a posição e a próxima posição distinta pula o
// tamanho do grupo empatado.
type RankedRow struct {
	Rank int `json:"rank"`
	RollupRow
}
