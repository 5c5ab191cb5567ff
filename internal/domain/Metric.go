package domain

import (
	"math"
	"strconv"
)

// Metric é um valor derivado de rollup. NaN significa "taxa indefinida"
// (denominador zero em métrica por unidade) e é serializado como null —
// nunca coagido a 0, para que o consumidor distinga "sem taxa" de "taxa zero".
type Metric float64

// NA é o marcador de métrica indefinida
func NA() Metric {
	return Metric(math.NaN())
}

// IsNA informa se a métrica é indefinida
func (m Metric) IsNA() bool {
	return math.IsNaN(float64(m))
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if m.IsNA() {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(float64(m), 'f', -1, 64)), nil
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = NA()
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*m = Metric(f)
	return nil
}

// PercentRate calcula num/den*100. Denominador zero dá 0.0: um funil sem
// entradas tem conversão zero, não indefinida.
func PercentRate(num, den float64) Metric {
	if den == 0 {
		return 0
	}

	return Metric(num / den * 100)
}

// PerUnit calcula num/den. Denominador zero dá NA: sem horas ou sem dias de
// trabalho não existe taxa por unidade.
func PerUnit(num, den float64) Metric {
	if den == 0 {
		return NA()
	}

	return Metric(num / den)
}
