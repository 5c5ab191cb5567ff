package aggregating

import (
	"math"
	"sort"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

const (
	minHistogramBins = 5
	maxHistogramBins = 30
)

// BuildHistogram monta a comparação de distribuição da métrica entre os meses
// da janela. As bordas dos bins são calculadas UMA vez sobre os valores
// agrupados de todos os meses e reaproveitadas em cada mês — bordas por mês
// tornariam os histogramas incomparáveis a olho.
//
// perMonth mapeia cada mês da janela para os valores da métrica naquele mês
// (NaN já removido); mês ausente do mapa vira HasData=false com contagens
// vazias, preservando a lacuna.
func BuildHistogram(metric string, months []domain.MonthKey, perMonth map[domain.MonthKey][]float64) *domain.MetricHistogram {
	var pooled []float64
	for _, values := range perMonth {
		pooled = append(pooled, values...)
	}

	histogram := &domain.MetricHistogram{
		Metric: metric,
		Months: make([]domain.MonthHistogram, 0, len(months)),
	}

	if len(pooled) == 0 {
		for _, month := range months {
			histogram.Months = append(histogram.Months, domain.MonthHistogram{Month: month})
		}
		return histogram
	}

	histogram.BinCount = binCount(pooled)
	histogram.Edges = binEdges(pooled, histogram.BinCount)

	for _, month := range months {
		values, ok := perMonth[month]
		entry := domain.MonthHistogram{Month: month, HasData: ok && len(values) > 0}

		if entry.HasData {
			entry.N = len(values)
			entry.Counts = countIntoBins(values, histogram.Edges)
		}

		histogram.Months = append(histogram.Months, entry)
	}

	return histogram
}

// binCount combina as regras de Sturges e Freedman–Diaconis pela média e
// limita o resultado a [5, 30]. Quando o IQR é zero (valores muito
// concentrados) só Sturges conta.
func binCount(values []float64) int {
	n := len(values)

	sturges := math.Ceil(math.Log2(float64(n))) + 1

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	iqr := percentile(sorted, 75) - percentile(sorted, 25)
	spread := sorted[n-1] - sorted[0]

	count := sturges
	if iqr > 0 && spread > 0 {
		width := 2 * iqr / math.Cbrt(float64(n))
		fd := math.Ceil(spread / width)
		count = math.Round((sturges + fd) / 2)
	}

	if count < minHistogramBins {
		return minHistogramBins
	}
	if count > maxHistogramBins {
		return maxHistogramBins
	}
	return int(count)
}

// percentile interpola linearmente entre as observações vizinhas; sorted já
// deve estar ordenado
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))

	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// binEdges gera bins+1 bordas igualmente espaçadas entre o mínimo e o máximo
// agrupados. Quando todos os valores são iguais, a faixa degenera e vira
// [v-0.5, v+0.5] para os bins terem largura.
func binEdges(values []float64, bins int) []float64 {
	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}

	if low == high {
		low -= 0.5
		high += 0.5
	}

	edges := make([]float64, bins+1)
	step := (high - low) / float64(bins)
	for i := 0; i <= bins; i++ {
		edges[i] = low + step*float64(i)
	}
	edges[bins] = high

	return edges
}

// countIntoBins distribui os valores pelos bins: cada valor cai no primeiro
// bin cuja borda superior o alcança (borda superior inclusiva). Valores fora
// da faixa compartilhada vão para o bin da ponta.
func countIntoBins(values []float64, edges []float64) []int {
	bins := len(edges) - 1
	counts := make([]int, bins)

	for _, v := range values {
		idx := sort.SearchFloat64s(edges[1:], v)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	return counts
}
