package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTenureBucketFor(t *testing.T) {
	asOf := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		joinDate *time.Time
		expected TenureBucket
	}{
		{
			name:     "Data de entrada desconhecida cai em Unknown",
			joinDate: nil,
			expected: TenureUnknown,
		},
		{
			name:     "Entrada no mesmo dia fica abaixo de 3 meses",
			joinDate: datePtr(2024, 4, 1),
			expected: TenureUnder3Months,
		},
		{
			name:     "91 dias arredonda para 3 meses e muda de faixa",
			joinDate: datePtr(2024, 1, 1),
			expected: Tenure3To6Months,
		},
		{
			name:     "74 dias arredonda para 2 meses e fica abaixo de 3",
			joinDate: datePtr(2024, 1, 18),
			expected: TenureUnder3Months,
		},
		{
			name:     "Cerca de 7 meses cai em 6–12",
			joinDate: datePtr(2023, 9, 1),
			expected: Tenure6To12Months,
		},
		{
			name:     "Mais de um ano cai na última faixa",
			joinDate: datePtr(2022, 12, 1),
			expected: TenureOver12Months,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TenureBucketFor(tt.joinDate, asOf))
		})
	}
}

func TestTenureBucketsOrdemCanonica(t *testing.T) {
	buckets := TenureBuckets()
	assert.Equal(t, []TenureBucket{
		TenureUnder3Months,
		Tenure3To6Months,
		Tenure6To12Months,
		TenureOver12Months,
		TenureUnknown,
	}, buckets)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
