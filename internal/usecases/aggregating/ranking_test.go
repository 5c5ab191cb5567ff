package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

func row(key string, calls int, hours float64, deals int) domain.RollupRow {
	return domain.RollupRow{
		Key:        key,
		CallCount:  calls,
		CallHours:  hours,
		TotalDeals: deals,
	}.ComputeDerived()
}

func TestRankRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.RollupRow
		metric   string
		limit    int
		minDeals int
		validate func(t *testing.T, ranked []domain.RankedRow)
	}{
		{
			name: "Empates dividem posição e a próxima pula o grupo",
			rows: []domain.RollupRow{
				row("A", 10, 1, 0),
				row("B", 10, 1, 0),
				row("C", 7, 1, 0),
			},
			metric: "call_count",
			validate: func(t *testing.T, ranked []domain.RankedRow) {
				assert.Len(t, ranked, 3)
				// [10, 10, 7] ⇒ posições [1, 1, 3]
				assert.Equal(t, 1, ranked[0].Rank)
				assert.Equal(t, 1, ranked[1].Rank)
				assert.Equal(t, 3, ranked[2].Rank)
				// Empate desempatado por chave ascendente
				assert.Equal(t, "A", ranked[0].Key)
				assert.Equal(t, "B", ranked[1].Key)
			},
		},
		{
			name: "Limite corta por posição, então empate na última posição sobra",
			rows: []domain.RollupRow{
				row("A", 10, 1, 0),
				row("B", 8, 1, 0),
				row("C", 8, 1, 0),
				row("D", 5, 1, 0),
			},
			metric: "call_count",
			limit:  2,
			validate: func(t *testing.T, ranked []domain.RankedRow) {
				// A=1, B=2, C=2 entram; D=4 fica fora
				assert.Len(t, ranked, 3)
				assert.Equal(t, 2, ranked[2].Rank)
			},
		},
		{
			name: "Linha com métrica indefinida fica fora do ranking",
			rows: []domain.RollupRow{
				row("A", 10, 2, 0),
				row("B", 20, 0, 0), // sem horas ⇒ calls_per_hour indefinido
			},
			metric: "calls_per_hour",
			validate: func(t *testing.T, ranked []domain.RankedRow) {
				assert.Len(t, ranked, 1)
				assert.Equal(t, "A", ranked[0].Key)
			},
		},
		{
			name: "Filtro de mínimo de negociações descarta antes de ordenar",
			rows: []domain.RollupRow{
				row("A", 10, 1, 5),
				row("B", 20, 1, 2),
			},
			metric:   "call_count",
			minDeals: 3,
			validate: func(t *testing.T, ranked []domain.RankedRow) {
				assert.Len(t, ranked, 1)
				assert.Equal(t, "A", ranked[0].Key)
				assert.Equal(t, 1, ranked[0].Rank)
			},
		},
		{
			name:   "Sem linhas devolve ranking vazio",
			rows:   []domain.RollupRow{},
			metric: "call_count",
			validate: func(t *testing.T, ranked []domain.RankedRow) {
				assert.Empty(t, ranked)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankRows(tt.rows, tt.metric, tt.limit, tt.minDeals)
			tt.validate(t, ranked)
		})
	}
}

func TestRankRowsDeterminismo(t *testing.T) {
	rows := []domain.RollupRow{
		row("C", 10, 1, 0),
		row("A", 10, 1, 0),
		row("B", 10, 1, 0),
	}

	// Mesma entrada, mesma saída, em qualquer ordem de chegada.
	// A comparação é pela sequência (posição, chave): linhas sem horas ou
	// staff carregam métricas indefinidas, e NaN nunca é igual a NaN.
	first := RankRows(rows, "call_count", 0, 0)
	second := RankRows([]domain.RollupRow{rows[2], rows[0], rows[1]}, "call_count", 0, 0)

	assert.Equal(t, rankSequence(first), rankSequence(second))
	assert.Equal(t, "A", first[0].Key)
	assert.Equal(t, "B", first[1].Key)
	assert.Equal(t, "C", first[2].Key)
}

func rankSequence(ranked []domain.RankedRow) []string {
	seq := make([]string, 0, len(ranked))
	for _, r := range ranked {
		seq = append(seq, fmt.Sprintf("%d:%s", r.Rank, r.Key))
	}
	return seq
}
