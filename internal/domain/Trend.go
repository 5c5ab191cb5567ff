package domain

// StaffTrend é a série temporal de uma métrica por operador ao longo de uma
// janela de meses. Mês sem dado para o operador é null — nunca 0 nem o valor
// do mês anterior arrastado.
type StaffTrend struct {
	Metric string        `json:"metric"`
	Months []MonthKey    `json:"months"`
	Series []TrendSeries `json:"series"`
}

// TrendSeries é a linha de um operador; Values é alinhado a Months
type TrendSeries struct {
	StaffName string    `json:"staff_name"`
	Branch    string    `json:"branch,omitempty"`
	Values    []*Metric `json:"values"`
}

// MetricHistogram compara a distribuição de uma métrica entre meses.
// As bordas dos bins são calculadas uma vez sobre os valores agrupados de
// todos os meses e reutilizadas em cada mês, para que as distribuições
// fiquem visualmente comparáveis.
type MetricHistogram struct {
	Metric   string           `json:"metric"`
	BinCount int              `json:"bin_count"`
	Edges    []float64        `json:"edges"`
	Months   []MonthHistogram `json:"months"`
}

// MonthHistogram são as contagens de um mês sobre as bordas compartilhadas
type MonthHistogram struct {
	Month   MonthKey `json:"month"`
	N       int      `json:"n"`
	Counts  []int    `json:"counts"`
	HasData bool     `json:"has_data"`
}

// Bins materializa os pares (início, fim, contagem) de um mês
func (h MetricHistogram) Bins(m MonthHistogram) []HistogramBin {
	bins := make([]HistogramBin, 0, len(m.Counts))
	for i, count := range m.Counts {
		bins = append(bins, HistogramBin{
			Start: h.Edges[i],
			End:   h.Edges[i+1],
			Count: count,
		})
	}
	return bins
}

// HistogramBin é um bin materializado
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}
