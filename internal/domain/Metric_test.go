package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		expected string
	}{
		{
			name:     "Métrica indefinida serializa como null",
			metric:   NA(),
			expected: "null",
		},
		{
			name:     "Zero serializa como 0 — zero e indefinido são distintos",
			metric:   0,
			expected: "0",
		},
		{
			name:     "Valor fracionário mantém a precisão",
			metric:   Metric(33.333333333333336),
			expected: "33.333333333333336",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.metric)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestMetricUnmarshalJSON(t *testing.T) {
	var m Metric
	assert.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.True(t, m.IsNA())

	assert.NoError(t, json.Unmarshal([]byte("42.5"), &m))
	assert.Equal(t, Metric(42.5), m)
}

func TestPercentRate(t *testing.T) {
	tests := []struct {
		name     string
		num      float64
		den      float64
		expected Metric
	}{
		{
			name:     "Conversão normal",
			num:      30,
			den:      100,
			expected: 30,
		},
		{
			name:     "Denominador zero vira 0, não indefinido",
			num:      5,
			den:      0,
			expected: 0,
		},
		{
			name:     "Conversão total",
			num:      10,
			den:      10,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentRate(tt.num, tt.den))
		})
	}
}

func TestPerUnit(t *testing.T) {
	t.Run("Divisão normal", func(t *testing.T) {
		assert.Equal(t, Metric(12.5), PerUnit(100, 8))
	})

	t.Run("Denominador zero vira indefinido, nunca 0", func(t *testing.T) {
		assert.True(t, PerUnit(100, 0).IsNA())
	})
}

func TestRoundedPreservaNA(t *testing.T) {
	// Uma linha sem horas tem calls_per_hour indefinido; o arredondamento de
	// apresentação não pode transformar isso em 0
	row := RollupRow{
		CallCount:      10,
		ConnectedCount: 3,
	}.ComputeDerived()

	assert.True(t, row.CallsPerHour.IsNA())

	rounded := row.Rounded()
	assert.Equal(t, Metric(30), rounded.ConnectRate)
	assert.True(t, rounded.CallsPerHour.IsNA())
}
