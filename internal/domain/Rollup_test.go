package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownMetricCobreTodasAsMetricasDaLinha(t *testing.T) {
	// Todo nome exposto pelas tags JSON de RollupRow vale para ranking e
	// tendência, inclusive as normalizações por operador
	metrics := []string{
		"call_count",
		"connected_count",
		"appointment_count",
		"call_hours",
		"working_days",
		"total_deals",
		"total_approved",
		"total_revenue",
		"total_potential_revenue",
		"connect_rate",
		"appointment_rate",
		"approval_rate",
		"calls_per_hour",
		"appointments_per_hour",
		"deals_per_hour",
		"revenue_per_hour",
		"calls_per_working_day",
		"appointments_per_working_day",
		"deals_per_working_day",
		"approved_per_working_day",
		"revenue_per_working_day",
		"calls_per_staff",
		"appointments_per_staff",
		"deals_per_staff",
		"revenue_per_staff",
	}

	for _, metric := range metrics {
		assert.True(t, KnownMetric(metric), "métrica %q deveria ser conhecida", metric)
	}

	assert.False(t, KnownMetric("inexistente"))
}

func TestRollupMetricPorStaff(t *testing.T) {
	row := RollupRow{
		Key:              "東京",
		CallCount:        100,
		CallHours:        8,
		UniqueStaffCount: 4,
		TotalDeals:       12,
		TotalRevenue:     240000,
	}.ComputeDerived()

	value, ok := RollupMetric(row, "calls_per_staff")
	assert.True(t, ok)
	assert.Equal(t, 25.0, value)

	value, ok = RollupMetric(row, "deals_per_staff")
	assert.True(t, ok)
	assert.Equal(t, 3.0, value)

	value, ok = RollupMetric(row, "revenue_per_staff")
	assert.True(t, ok)
	assert.Equal(t, 60000.0, value)

	_, ok = RollupMetric(row, "inexistente")
	assert.False(t, ok)
}
