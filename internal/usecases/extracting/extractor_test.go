package extracting

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	sourcedomain "github.com/vfg2006/callcenter-analytics-api/infrastructure/source/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

func TestExtractDailyActivity(t *testing.T) {
	tests := []struct {
		name     string
		staff    map[string]sourcedomain.StaffActivity
		validate func(t *testing.T, records []domain.ActivityRecord)
	}{
		{
			name: "Dia sem ligação é filtrado, não zerado",
			staff: map[string]sourcedomain.StaffActivity{
				"田中": {
					Branch: "東京",
					DailyActivity: []sourcedomain.DailyActivity{
						{
							Date:        "2024-09-02",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 0},
						},
						{
							Date:        "2024-09-03",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 12, ChargeConnected: 4},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, "2024-09-03", records[0].Date)
				assert.Equal(t, 12, records[0].CallCount)
				assert.Equal(t, 4, records[0].ConnectedCount)
			},
		},
		{
			name: "Produto principal e secundários viram registros separados",
			staff: map[string]sourcedomain.StaffActivity{
				"田中": {
					Branch: "東京",
					DailyActivity: []sourcedomain.DailyActivity{
						{
							Date:        "2024-09-03",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 10},
							SubProducts: []sourcedomain.ProductActivity{
								{Product: "B", CallCount: 5},
								{Product: "C", CallCount: 0}, // filtrado
							},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 2)

				sort.Slice(records, func(i, j int) bool { return records[i].Product < records[j].Product })
				assert.Equal(t, domain.ProductTypeMain, records[0].ProductType)
				assert.Equal(t, "A", records[0].Product)
				assert.Equal(t, domain.ProductTypeSub, records[1].ProductType)
				assert.Equal(t, "B", records[1].Product)
			},
		},
		{
			name: "Branch ausente recebe o rótulo padrão do export",
			staff: map[string]sourcedomain.StaffActivity{
				"佐藤": {
					DailyActivity: []sourcedomain.DailyActivity{
						{
							Date:        "2024-09-03",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 1},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, domain.BranchUnassigned, records[0].Branch)
			},
		},
		{
			name: "Timestamp UTC é convertido para data de calendário em JST",
			staff: map[string]sourcedomain.StaffActivity{
				"田中": {
					Branch:   "東京",
					JoinDate: "2024-01-15T00:00:00Z",
					DailyActivity: []sourcedomain.DailyActivity{
						{
							// 23h de 2 de setembro UTC já é dia 3 em JST
							Date:        "2024-09-02T23:30:00Z",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 3},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, "2024-09-03", records[0].Date)
				assert.Equal(t, "2024-01-15", records[0].JoinDate)
			},
		},
		{
			name: "Data não parseável é preservada como veio",
			staff: map[string]sourcedomain.StaffActivity{
				"田中": {
					Branch: "東京",
					DailyActivity: []sourcedomain.DailyActivity{
						{
							Date:        "primeira semana",
							MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 2},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, "primeira semana", records[0].Date)
			},
		},
		{
			name: "Dia sem produto principal só gera registros dos secundários",
			staff: map[string]sourcedomain.StaffActivity{
				"田中": {
					Branch: "東京",
					DailyActivity: []sourcedomain.DailyActivity{
						{
							Date:        "2024-09-03",
							SubProducts: []sourcedomain.ProductActivity{{Product: "B", CallCount: 7}},
						},
					},
				},
			},
			validate: func(t *testing.T, records []domain.ActivityRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, "B", records[0].Product)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ExtractDailyActivity(tt.staff)
			tt.validate(t, records)
		})
	}
}

func TestBuildDataset(t *testing.T) {
	basic := &sourcedomain.BasicAnalysis{
		MonthlyAnalysis: map[string]sourcedomain.MonthlyStaffAnalysis{
			"2024-09": {
				Staff: map[string]sourcedomain.StaffActivity{
					"田中": {
						Branch:        "東京",
						TotalDeals:    4,
						TotalApproved: 2,
						TotalRevenue:  900000,
						DailyActivity: []sourcedomain.DailyActivity{
							{
								Date:        "2024-09-03",
								MainProduct: &sourcedomain.ProductActivity{Product: "A", CallCount: 10},
							},
						},
					},
				},
			},
		},
	}

	summary := &sourcedomain.MonthlySummary{
		KeyMetrics: &sourcedomain.SummaryKeyMetrics{TotalDeals: 9, TotalApproved: 5, TotalRevenue: 2000000},
		StaffPerformance: map[string]sourcedomain.DealPerformance{
			"鈴木": {TotalDeals: 5, TotalApproved: 3, TotalRevenue: 1100000},
		},
		BranchPerformance: map[string]sourcedomain.DealPerformance{
			"東京": {TotalDeals: 9, TotalApproved: 5, TotalRevenue: 2000000},
		},
		DealStatusBreakdown: map[string]int{"承認": 5, "審査中": 4},
	}

	dataset := BuildDataset("2024-09", basic, summary, nil)

	assert.Equal(t, "2024-09", dataset.Month)
	assert.Len(t, dataset.Activities, 1)

	// Totais do operador no 基本分析 têm precedência; quem só aparece no
	// 月次サマリー entra pelo fallback
	assert.Equal(t, 4, dataset.StaffDeals["田中"].TotalDeals)
	assert.Equal(t, 5, dataset.StaffDeals["鈴木"].TotalDeals)

	assert.Equal(t, 9, dataset.BranchDeals["東京"].TotalDeals)
	assert.Equal(t, 9, dataset.KeyMetrics.TotalDeals)
	assert.Equal(t, map[string]int{"承認": 5, "審査中": 4}, dataset.DealStatusBreakdown)
}

func TestBuildDatasetSemFacets(t *testing.T) {
	dataset := BuildDataset("2024-09", nil, nil, nil)

	assert.Equal(t, "2024-09", dataset.Month)
	assert.Empty(t, dataset.Activities)
	assert.False(t, dataset.HasActivity())
	assert.Nil(t, dataset.KeyMetrics)
}
