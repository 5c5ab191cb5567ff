package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	assert.NoError(t, err)
}

func TestMonthFromFileName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		month    domain.MonthKey
		ok       bool
	}{
		{
			name:     "Facet básico",
			fileName: "基本分析_2024-09.json",
			month:    "2024-09",
			ok:       true,
		},
		{
			name:     "Facet de retenção",
			fileName: "定着率分析_2025-01.json",
			month:    "2025-01",
			ok:       true,
		},
		{
			name:     "Underscore extra: vale o último segmento",
			fileName: "backup_基本分析_2024-09.json",
			month:    "2024-09",
			ok:       true,
		},
		{
			name:     "Mês fora da faixa",
			fileName: "基本分析_2024-13.json",
			ok:       false,
		},
		{
			name:     "Sem underscore",
			fileName: "2024-09.json",
			ok:       false,
		},
		{
			name:     "Extensão errada",
			fileName: "基本分析_2024-09.csv",
			ok:       false,
		},
		{
			name:     "Data completa não é mês",
			fileName: "基本分析_2024-09-01.json",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, ok := MonthFromFileName(tt.fileName)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.month, month)
		})
	}
}

func TestListAvailableMonths(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "基本分析_2024-08.json", `{}`)
	writeExport(t, dir, "基本分析_2024-09.json", `{}`)
	writeExport(t, dir, "月次サマリー_2024-09.json", `{}`)
	writeExport(t, dir, "定着率分析_2025-01.json", `{}`)
	writeExport(t, dir, "notas.txt", "não é export")

	adapter := NewFilesystemAdapter(dir)

	months, err := adapter.ListAvailableMonths()

	assert.NoError(t, err)
	// Mais recente primeiro, meses deduplicados entre facets
	assert.Equal(t, []domain.MonthKey{"2025-01", "2024-09", "2024-08"}, months)
}

func TestListAvailableMonthsDiretorioInexistente(t *testing.T) {
	adapter := NewFilesystemAdapter(filepath.Join(t.TempDir(), "nao-existe"))

	months, err := adapter.ListAvailableMonths()

	assert.NoError(t, err)
	assert.Empty(t, months)
}

func TestLoadActivityAndDeals(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "基本分析_2024-09.json", `{
		"monthly_analysis": {
			"2024-09": {
				"staff": {
					"田中": {
						"branch": "東京",
						"daily_activity": [
							{"date": "2024-09-02", "main_product": {"product": "A", "call_count": 30, "call_hours": 2}}
						]
					}
				}
			}
		}
	}`)
	writeExport(t, dir, "詳細分析_2024-09.json", `{"qualquer": "estrutura"}`)

	adapter := NewFilesystemAdapter(dir)

	basic, detail, summary, err := adapter.LoadActivityAndDeals("2024-09")

	assert.NoError(t, err)
	assert.NotNil(t, basic)
	assert.Contains(t, basic.MonthlyAnalysis, "2024-09")
	assert.JSONEq(t, `{"qualquer": "estrutura"}`, string(detail))
	// Facet ausente não é erro
	assert.Nil(t, summary)
}

func TestLoadActivityAndDealsMesSemArquivos(t *testing.T) {
	adapter := NewFilesystemAdapter(t.TempDir())

	basic, detail, summary, err := adapter.LoadActivityAndDeals("2024-01")

	assert.NoError(t, err)
	assert.Nil(t, basic)
	assert.Nil(t, detail)
	assert.Nil(t, summary)
}

func TestLoadActivityAndDealsJSONInvalido(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "基本分析_2024-09.json", `{"monthly_analysis": `)

	adapter := NewFilesystemAdapter(dir)

	_, _, _, err := adapter.LoadActivityAndDeals("2024-09")

	assert.Error(t, err)
	assert.True(t, IsMalformed(err))
	assert.False(t, IsIO(err))
}

func TestLoadRetention(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "定着率分析_2024-09.json", `{
		"monthly_retention_rates": {
			"2024-09": {"active_staff": 12, "total_staff": 13, "retention_rate": 92.3}
		}
	}`)

	adapter := NewFilesystemAdapter(dir)

	retention, err := adapter.LoadRetention("2024-09")

	assert.NoError(t, err)
	assert.NotNil(t, retention)
	assert.Equal(t, 92.3, retention.MonthlyRates["2024-09"].RetentionRate)
}

func TestLoadRetentionAusente(t *testing.T) {
	adapter := NewFilesystemAdapter(t.TempDir())

	retention, err := adapter.LoadRetention("2024-09")

	assert.NoError(t, err)
	assert.Nil(t, retention)
}

func TestVersion(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "基本分析_2024-09.json", `{}`)

	adapter := NewFilesystemAdapter(dir)

	before := adapter.Version()
	assert.NotEmpty(t, before)
	// Sem mudança no diretório, a versão é estável
	assert.Equal(t, before, adapter.Version())

	adapter.SetVersion("abc123")
	assert.Equal(t, "abc123", adapter.Version())
}
