package domain

import (
	"math"
	"time"
)

// TenureBucket é a faixa de tempo de casa de um operador em um dado mês
type TenureBucket string

const (
	TenureUnder3Months  TenureBucket = "<3mo"
	Tenure3To6Months    TenureBucket = "3–6mo"
	Tenure6To12Months   TenureBucket = "6–12mo"
	TenureOver12Months  TenureBucket = ">=12mo"
	TenureUnknown       TenureBucket = "Unknown"
	daysPerTenureMonth               = 30
)

// TenureBucketFor calcula a faixa de tempo de casa na data de referência.
// Meses são aproximados como 30 dias (round((asOf-join)/30)), o mesmo corte
// usado pelos exports históricos; trocar para meses de calendário deslocaria
// operadores perto das fronteiras de 90/180/360 dias.
func TenureBucketFor(joinDate *time.Time, asOf time.Time) TenureBucket {
	if joinDate == nil || joinDate.IsZero() {
		return TenureUnknown
	}

	days := asOf.Sub(*joinDate).Hours() / 24
	months := math.Round(days / daysPerTenureMonth)

	switch {
	case months < 3:
		return TenureUnder3Months
	case months < 6:
		return Tenure3To6Months
	case months < 12:
		return Tenure6To12Months
	default:
		return TenureOver12Months
	}
}

// TenureBuckets é a ordem canônica de exibição das faixas
func TenureBuckets() []TenureBucket {
	return []TenureBucket{
		TenureUnder3Months,
		Tenure3To6Months,
		Tenure6To12Months,
		TenureOver12Months,
		TenureUnknown,
	}
}
