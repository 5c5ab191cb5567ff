package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/pkg/utils"
)

// RollupByDimension agrupa os registros de atividade pela dimensão, soma os
// contadores, anexa os números do TAAAN da chave correspondente (zero quando a
// chave não existe lá) e deriva as razões a partir dos totais do grupo.
// Linhas saem ordenadas pela chave para determinismo.
func RollupByDimension(dataset *domain.MonthDataset, dimension domain.Dimension, filters *domain.ReportFilters) []domain.RollupRow {
	type accumulator struct {
		row    domain.RollupRow
		staff  map[string]struct{}
		days   map[string]struct{}
		branch string
	}

	groups := map[string]*accumulator{}

	for _, rec := range dataset.Activities {
		if !filters.Matches(rec) {
			continue
		}

		key := dimensionKey(dataset, rec, dimension)

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				row:    domain.RollupRow{Key: key},
				staff:  map[string]struct{}{},
				days:   map[string]struct{}{},
				branch: rec.Branch,
			}
			groups[key] = acc
		}

		acc.row.CallCount += rec.CallCount
		acc.row.ConnectedCount += rec.ConnectedCount
		acc.row.AppointmentCount += rec.AppointmentCount
		acc.row.CallHours += rec.CallHours

		acc.staff[rec.StaffName] = struct{}{}
		// Todo registro extraído tem call_count > 0, então toda data
		// distinta do grupo é um dia trabalhado
		acc.days[rec.Date] = struct{}{}
	}

	rows := make([]domain.RollupRow, 0, len(groups))
	for key, acc := range groups {
		row := acc.row
		row.UniqueStaffCount = len(acc.staff)
		row.WorkingDays = len(acc.days)

		if dimension == domain.DimensionStaff {
			row.Branch = acc.branch
		}

		deals := dealsForKey(dataset, dimension, key)
		row.TotalDeals = deals.TotalDeals
		row.TotalApproved = deals.TotalApproved
		row.TotalRevenue = deals.TotalRevenue
		row.TotalPotentialRevenue = deals.TotalPotentialRevenue

		rows = append(rows, row.ComputeDerived())
	}

	sortRollupRows(rows, dimension)

	return rows
}

// dimensionKey resolve o valor da dimensão para um registro
func dimensionKey(dataset *domain.MonthDataset, rec domain.ActivityRecord, dimension domain.Dimension) string {
	switch dimension {
	case domain.DimensionStaff:
		return rec.StaffName
	case domain.DimensionBranch:
		return rec.Branch
	case domain.DimensionProduct:
		return rec.Product
	case domain.DimensionMonth:
		return dataset.Month
	case domain.DimensionTenure:
		return string(tenureBucketForRecord(rec))
	default:
		return rec.StaffName
	}
}

// tenureBucketForRecord calcula a faixa de tempo de casa usando a data do
// próprio registro como referência. Datas que ficaram no valor bruto do
// export (não parseáveis) caem em Unknown.
func tenureBucketForRecord(rec domain.ActivityRecord) domain.TenureBucket {
	if rec.JoinDate == "" {
		return domain.TenureUnknown
	}

	joinDate, err := utils.ParseDate(rec.JoinDate)
	if err != nil {
		return domain.TenureUnknown
	}

	asOf, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return domain.TenureUnknown
	}

	return domain.TenureBucketFor(joinDate, asOf)
}

// dealsForKey anexa o DealSummary da chave; chave sem dados no TAAAN recebe
// zeros — nunca é erro. A dimensão mês usa os totais do 月次サマリー.
func dealsForKey(dataset *domain.MonthDataset, dimension domain.Dimension, key string) domain.DealSummary {
	switch dimension {
	case domain.DimensionStaff:
		return dataset.StaffDeals[key]
	case domain.DimensionBranch:
		return dataset.BranchDeals[key]
	case domain.DimensionProduct:
		return dataset.ProductDeals[key]
	case domain.DimensionMonth:
		if dataset.KeyMetrics != nil {
			return domain.DealSummary{
				TotalDeals:    dataset.KeyMetrics.TotalDeals,
				TotalApproved: dataset.KeyMetrics.TotalApproved,
				TotalRevenue:  dataset.KeyMetrics.TotalRevenue,
			}
		}
		return domain.DealSummary{}
	default:
		// Tempo de casa não existe como dimensão no TAAAN
		return domain.DealSummary{}
	}
}

func sortRollupRows(rows []domain.RollupRow, dimension domain.Dimension) {
	if dimension == domain.DimensionTenure {
		order := map[string]int{}
		for i, bucket := range domain.TenureBuckets() {
			order[string(bucket)] = i
		}

		sort.Slice(rows, func(i, j int) bool {
			return order[rows[i].Key] < order[rows[j].Key]
		})
		return
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key < rows[j].Key
	})
}

// KeyMetricsFor calcula o funil do mês inteiro: atividade somada dos
// registros filtrados e totais de negociação do TAAAN.
func KeyMetricsFor(dataset *domain.MonthDataset, filters *domain.ReportFilters) domain.ReportKeyMetrics {
	var metrics domain.ReportKeyMetrics

	for _, rec := range dataset.Activities {
		if !filters.Matches(rec) {
			continue
		}

		metrics.TotalCalls += rec.CallCount
		metrics.TotalConnected += rec.ConnectedCount
		metrics.TotalAppointments += rec.AppointmentCount
		metrics.TotalHours += rec.CallHours
	}

	if dataset.KeyMetrics != nil {
		metrics.TotalDeals = dataset.KeyMetrics.TotalDeals
		metrics.TotalApproved = dataset.KeyMetrics.TotalApproved
		metrics.TotalRevenue = dataset.KeyMetrics.TotalRevenue
	}

	metrics.CallToConnectRate = domain.PercentRate(float64(metrics.TotalConnected), float64(metrics.TotalCalls))
	metrics.ConnectToAppointmentRate = domain.PercentRate(float64(metrics.TotalAppointments), float64(metrics.TotalConnected))
	metrics.ApprovalRate = domain.PercentRate(float64(metrics.TotalApproved), float64(metrics.TotalDeals))
	metrics.AvgCallsPerHour = domain.PerUnit(float64(metrics.TotalCalls), metrics.TotalHours)

	return metrics
}
