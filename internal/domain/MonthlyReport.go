package domain

import (
	"time"
)

// ReportFilters restringe um relatório a um subconjunto de operadores e/ou
// branches. Filtros vazios não restringem nada.
type ReportFilters struct {
	StaffNames []string `json:"staff_names,omitempty"`
	Branches   []string `json:"branches,omitempty"`
}

// Matches informa se o registro passa pelos filtros
func (f *ReportFilters) Matches(rec ActivityRecord) bool {
	if f == nil {
		return true
	}

	if len(f.StaffNames) > 0 && !contains(f.StaffNames, rec.StaffName) {
		return false
	}

	if len(f.Branches) > 0 && !contains(f.Branches, rec.Branch) {
		return false
	}

	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// MonthlyReport é o relatório analítico completo de um mês, consumido pela
// camada de apresentação como estrutura tabular simples.
type MonthlyReport struct {
	Month         MonthKey  `json:"month"`
	SourceVersion string    `json:"source_version,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`

	KeyMetrics ReportKeyMetrics `json:"key_metrics"`

	Staff   []RollupRow `json:"staff"`
	Branch  []RollupRow `json:"branch"`
	Product []RollupRow `json:"product"`
	Tenure  []RollupRow `json:"tenure"`

	// Repasse do export: distribuição de status de negociação no TAAAN
	DealStatusBreakdown map[string]int `json:"deal_status_breakdown,omitempty"`

	Retention *RetentionReport `json:"retention,omitempty"`
}

// ReportKeyMetrics é o funil do mês inteiro: atividade somada do 基本分析 e
// totais de negociação do TAAAN, com as conversões entre etapas.
type ReportKeyMetrics struct {
	TotalCalls        int     `json:"total_calls"`
	TotalConnected    int     `json:"total_connected"`
	TotalAppointments int     `json:"total_appointments"`
	TotalHours        float64 `json:"total_hours"`

	TotalDeals    int     `json:"total_deals"`
	TotalApproved int     `json:"total_approved"`
	TotalRevenue  float64 `json:"total_revenue"`

	CallToConnectRate        Metric `json:"call_to_connect_rate"`
	ConnectToAppointmentRate Metric `json:"connect_to_appointment_rate"`
	ApprovalRate             Metric `json:"approval_rate"`
	AvgCallsPerHour          Metric `json:"avg_calls_per_hour"`
}

// Rounded aplica o arredondamento de apresentação ao relatório inteiro
func (r MonthlyReport) Rounded() MonthlyReport {
	r.KeyMetrics = r.KeyMetrics.rounded()
	r.Staff = roundedRows(r.Staff)
	r.Branch = roundedRows(r.Branch)
	r.Product = roundedRows(r.Product)
	r.Tenure = roundedRows(r.Tenure)
	return r
}

func (k ReportKeyMetrics) rounded() ReportKeyMetrics {
	k.CallToConnectRate = roundMetric(k.CallToConnectRate)
	k.ConnectToAppointmentRate = roundMetric(k.ConnectToAppointmentRate)
	k.ApprovalRate = roundMetric(k.ApprovalRate)
	return k
}

func roundedRows(rows []RollupRow) []RollupRow {
	out := make([]RollupRow, len(rows))
	for i, row := range rows {
		out[i] = row.Rounded()
	}
	return out
}

// MonthComparisonEntry é a fatia independente de um mês dentro de uma
// comparação multi-mês. Meses sem dados aparecem com HasData=false — o
// gráfico desenha a lacuna em vez de um falso zero.
type MonthComparisonEntry struct {
	Month   MonthKey `json:"month"`
	HasData bool     `json:"has_data"`

	KeyMetrics *ReportKeyMetrics `json:"key_metrics,omitempty"`
	Staff      []RollupRow       `json:"staff,omitempty"`
}

// Rounded aplica o arredondamento de apresentação à entrada
func (e MonthComparisonEntry) Rounded() MonthComparisonEntry {
	if e.KeyMetrics != nil {
		rounded := e.KeyMetrics.rounded()
		e.KeyMetrics = &rounded
	}
	e.Staff = roundedRows(e.Staff)
	return e
}

// AvailableMonths são os meses com dados na origem, do mais recente para o
// mais antigo, com os anos distintos para os seletores da interface.
type AvailableMonths struct {
	Months []MonthKey `json:"months"`
	Years  []string   `json:"years"`
}
