package extracting

import (
	sourcedomain "github.com/vfg2006/callcenter-analytics-api/infrastructure/source/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

// BuildDataset normaliza os facets brutos de um mês no dataset canônico.
// Toda decisão "usa este campo se existir, senão aquele" acontece aqui, de uma
// vez; o pipeline de agregação nunca precisa escolher entre nomes de campo.
//
// Os números de negociação por operador vêm preferencialmente dos totais que o
// 基本分析 embute por operador; operadores que só aparecem no
// staff_performance do 月次サマリー entram pelo fallback. Branch e produto só
// existem no 月次サマリー.
func BuildDataset(
	month domain.MonthKey,
	basic *sourcedomain.BasicAnalysis,
	summary *sourcedomain.MonthlySummary,
	retention *domain.RetentionReport,
) *domain.MonthDataset {
	dataset := &domain.MonthDataset{
		Month:        month,
		Activities:   []domain.ActivityRecord{},
		StaffDeals:   map[string]domain.DealSummary{},
		BranchDeals:  map[string]domain.DealSummary{},
		ProductDeals: map[string]domain.DealSummary{},
		Retention:    retention,
	}

	if basic != nil {
		if monthly, ok := basic.MonthlyAnalysis[month]; ok {
			dataset.Activities = ExtractDailyActivity(monthly.Staff)

			for staffName, activity := range monthly.Staff {
				dataset.StaffDeals[staffName] = domain.DealSummary{
					TotalDeals:    activity.TotalDeals,
					TotalApproved: activity.TotalApproved,
					TotalRevenue:  activity.TotalRevenue,
				}
			}
		}
	}

	if summary != nil {
		// Fallback: operadores presentes apenas no sumário do TAAAN
		for staffName, perf := range summary.StaffPerformance {
			if _, ok := dataset.StaffDeals[staffName]; !ok {
				dataset.StaffDeals[staffName] = dealSummaryFromPerformance(perf)
			}
		}

		for branch, perf := range summary.BranchPerformance {
			dataset.BranchDeals[branch] = dealSummaryFromPerformance(perf)
		}

		for product, perf := range summary.ProductPerformance {
			dataset.ProductDeals[product] = dealSummaryFromPerformance(perf)
		}

		if summary.KeyMetrics != nil {
			dataset.KeyMetrics = &domain.DealKeyMetrics{
				TotalDeals:    summary.KeyMetrics.TotalDeals,
				TotalApproved: summary.KeyMetrics.TotalApproved,
				TotalRevenue:  summary.KeyMetrics.TotalRevenue,
			}
		}

		dataset.DealStatusBreakdown = summary.DealStatusBreakdown
	}

	return dataset
}

func dealSummaryFromPerformance(perf sourcedomain.DealPerformance) domain.DealSummary {
	return domain.DealSummary{
		TotalDeals:            perf.TotalDeals,
		TotalApproved:         perf.TotalApproved,
		TotalRevenue:          perf.TotalRevenue,
		TotalPotentialRevenue: perf.TotalPotentialRevenue,
	}
}
