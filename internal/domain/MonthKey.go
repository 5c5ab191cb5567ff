package domain

import (
	"fmt"
	"time"
)

// MonthKey é a chave temporal canônica no formato YYYY-MM. É a única chave de
// junção entre os facets de um mês; aritmética de mês é sempre feita por
// decomposição ano/mês, nunca por aproximação de 30 dias.
type MonthKey = string

// ValidateMonthKey valida o formato lexical exato YYYY-MM. Formato inválido é
// um bug do chamador, não um problema de qualidade de dados.
func ValidateMonthKey(month string) error {
	if len(month) != 7 || month[4] != '-' {
		return fmt.Errorf("mês inválido %q: use o formato YYYY-MM", month)
	}

	for i, c := range month {
		if i == 4 {
			continue
		}
		if c < '0' || c > '9' {
			return fmt.Errorf("mês inválido %q: use o formato YYYY-MM", month)
		}
	}

	if mm := month[5:]; mm < "01" || mm > "12" {
		return fmt.Errorf("mês inválido %q: mês deve estar entre 01 e 12", month)
	}

	return nil
}

// MonthTime retorna o primeiro dia do mês em UTC
func MonthTime(month MonthKey) (time.Time, error) {
	if err := ValidateMonthKey(month); err != nil {
		return time.Time{}, err
	}

	return time.Parse("2006-01", month)
}

// PrevMonths retorna os n meses estritamente anteriores ao mês informado,
// ordenados do mais antigo para o mais recente. O decremento é exato por
// ano/mês — subtrair 30 dias repetidamente deriva perto das viradas de mês.
func PrevMonths(month MonthKey, n int) ([]MonthKey, error) {
	t, err := MonthTime(month)
	if err != nil {
		return nil, err
	}

	months := make([]MonthKey, 0, n)
	for i := n; i >= 1; i-- {
		months = append(months, t.AddDate(0, -i, 0).Format("2006-01"))
	}

	return months, nil
}

// ComparisonMonths retorna a janela de comparação: o mês base e seus n-1
// antecessores, do mais antigo para o mais recente.
func ComparisonMonths(month MonthKey, n int) ([]MonthKey, error) {
	if n < 1 {
		return nil, fmt.Errorf("janela de comparação inválida: %d", n)
	}

	months, err := PrevMonths(month, n-1)
	if err != nil {
		return nil, err
	}

	return append(months, month), nil
}
