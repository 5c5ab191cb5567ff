package aggregating

import (
	"sort"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

// RankRows ordena as linhas pela métrica em ordem decrescente (empate
// desempata por chave ascendente) e atribui posições por competição: valores
// iguais dividem a posição e a próxima posição distinta pula o tamanho do
// grupo empatado — [10, 10, 7] vira [1, 1, 3].
//
// Linhas cujo valor da métrica é NaN ficam de fora do ranking: "sem taxa" não
// é comparável com taxa nenhuma. minDeals > 0 descarta linhas com menos
// negociações antes da ordenação. limit > 0 corta por posição (rank <= limit),
// então um empate na última posição pode devolver mais linhas que o limite.
func RankRows(rows []domain.RollupRow, metric string, limit int, minDeals int) []domain.RankedRow {
	type scored struct {
		row   domain.RollupRow
		value float64
	}

	candidates := make([]scored, 0, len(rows))
	for _, row := range rows {
		if minDeals > 0 && row.TotalDeals < minDeals {
			continue
		}

		value, ok := domain.RollupMetric(row, metric)
		if !ok || value != value {
			continue
		}

		candidates = append(candidates, scored{row: row, value: value})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].value != candidates[j].value {
			return candidates[i].value > candidates[j].value
		}
		return candidates[i].row.Key < candidates[j].row.Key
	})

	ranked := make([]domain.RankedRow, 0, len(candidates))
	rank := 0
	for i, candidate := range candidates {
		if i == 0 || candidate.value != candidates[i-1].value {
			rank = i + 1
		}

		if limit > 0 && rank > limit {
			break
		}

		ranked = append(ranked, domain.RankedRow{
			Rank:      rank,
			RollupRow: candidate.row,
		})
	}

	return ranked
}
