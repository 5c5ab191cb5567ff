package source

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

func buildZip(t *testing.T, members map[string]string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		assert.NoError(t, err)
		_, err = w.Write([]byte(content))
		assert.NoError(t, err)
	}
	assert.NoError(t, zw.Close())

	return bytes.NewReader(buf.Bytes())
}

func TestImportZip(t *testing.T) {
	dir := t.TempDir()
	adapter := NewFilesystemAdapter(dir)

	zr := buildZip(t, map[string]string{
		"基本分析_2024-09.json":       `{"monthly_analysis": {}}`,
		"exports/月次サマリー_2024-09.json": `{"key_metrics": null}`,
	})

	result, err := adapter.ImportZip(zr, zr.Size())

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Version)
	assert.ElementsMatch(t, []string{"基本分析_2024-09.json", "月次サマリー_2024-09.json"}, result.Imported)
	assert.Empty(t, result.Skipped)

	// Os membros foram gravados achatados no diretório de exports
	_, err = os.Stat(filepath.Join(dir, "月次サマリー_2024-09.json"))
	assert.NoError(t, err)

	// A ingestão avança a versão do dataset
	assert.Equal(t, result.Version, adapter.Version())

	months, err := adapter.ListAvailableMonths()
	assert.NoError(t, err)
	assert.Equal(t, []domain.MonthKey{"2024-09"}, months)
}

func TestImportZipMembrosForaDaConvencao(t *testing.T) {
	dir := t.TempDir()
	adapter := NewFilesystemAdapter(dir)

	zr := buildZip(t, map[string]string{
		"基本分析_2024-09.json":          `{}`,
		"leiame.txt":                  "instruções",
		"基本分析_2024-13.json":          `{}`,
		"詳細分析_2024-09.json":          `{invalido`,
		"__MACOSX/基本分析_2024-09.json": "lixo",
		".DS_Store":                   "lixo",
	})

	result, err := adapter.ImportZip(zr, zr.Size())

	assert.NoError(t, err)
	assert.Equal(t, []string{"基本分析_2024-09.json"}, result.Imported)
	// Fora da convenção ou JSON inválido vira Skipped; artefatos de
	// compactador nem aparecem
	assert.ElementsMatch(t, []string{"leiame.txt", "基本分析_2024-13.json", "詳細分析_2024-09.json"}, result.Skipped)

	_, err = os.Stat(filepath.Join(dir, "詳細分析_2024-09.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestImportZipVazio(t *testing.T) {
	adapter := NewFilesystemAdapter(t.TempDir())

	zr := buildZip(t, map[string]string{"leiame.txt": "nada útil"})

	result, err := adapter.ImportZip(zr, zr.Size())

	assert.NoError(t, err)
	assert.Empty(t, result.Imported)
	// Sem membro importado a versão não avança
	assert.Empty(t, result.Version)
}

func TestImportZipCorrompido(t *testing.T) {
	adapter := NewFilesystemAdapter(t.TempDir())

	corrupt := bytes.NewReader([]byte("isto não é um ZIP"))

	_, err := adapter.ImportZip(corrupt, corrupt.Size())

	assert.Error(t, err)
	assert.True(t, IsMalformed(err))
}
