package source

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	sourcedomain "github.com/vfg2006/callcenter-analytics-api/infrastructure/source/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FilesystemAdapter resolve os facets em um diretório local de exports.
// É também o destino da ingestão de ZIP: um upload grava os JSONs aqui e
// avança a versão do dataset.
type FilesystemAdapter struct {
	dir string

	versionMutex sync.RWMutex
	version      string
}

func NewFilesystemAdapter(dir string) *FilesystemAdapter {
	return &FilesystemAdapter{dir: dir}
}

func (a *FilesystemAdapter) Name() string {
	return "filesystem"
}

// Version retorna a versão corrente do dataset. Depois de um upload é o ID
// gerado na ingestão; antes disso é um hash do conteúdo do diretório, para que
// entradas de cache pré-existentes continuem válidas entre reinícios.
func (a *FilesystemAdapter) Version() string {
	a.versionMutex.RLock()
	if a.version != "" {
		defer a.versionMutex.RUnlock()
		return a.version
	}
	a.versionMutex.RUnlock()

	return a.contentHash()
}

// SetVersion registra a versão atribuída pela última ingestão
func (a *FilesystemAdapter) SetVersion(version string) {
	a.versionMutex.Lock()
	defer a.versionMutex.Unlock()
	a.version = version
}

func (a *FilesystemAdapter) contentHash() string {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return "empty"
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		names = append(names, fmt.Sprintf("%s:%d:%d", entry.Name(), info.Size(), info.ModTime().UnixNano()))
	}

	sort.Strings(names)

	h := fnv.New64a()
	for _, name := range names {
		h.Write([]byte(name))
	}

	return fmt.Sprintf("%x", h.Sum64())
}

// ListAvailableMonths extrai os meses dos nomes de arquivo presentes no
// diretório. Um arquivo conta quando o sufixo antes de .json tem a forma
// exata YYYY-MM.
func (a *FilesystemAdapter) ListAvailableMonths() ([]domain.MonthKey, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.MonthKey{}, nil
		}
		return nil, &Error{Kind: KindIO, Month: "", Facet: "", Err: errors.Wrap(err, "listando diretório de exports")}
	}

	seen := map[domain.MonthKey]struct{}{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		month, ok := MonthFromFileName(entry.Name())
		if !ok {
			continue
		}

		seen[month] = struct{}{}
	}

	months := make([]domain.MonthKey, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}

	// Mais recente primeiro; a ordem lexical do YYYY-MM é a ordem temporal
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months, nil
}

// MonthFromFileName extrai o mês de um nome de arquivo de export
// (ex.: 基本分析_2024-09.json → 2024-09)
func MonthFromFileName(name string) (domain.MonthKey, bool) {
	if !strings.HasSuffix(name, ".json") || !strings.Contains(name, "_") {
		return "", false
	}

	base := strings.TrimSuffix(name, ".json")
	parts := strings.Split(base, "_")
	month := parts[len(parts)-1]

	if domain.ValidateMonthKey(month) != nil {
		return "", false
	}

	return month, true
}

func (a *FilesystemAdapter) LoadActivityAndDeals(month domain.MonthKey) (*sourcedomain.BasicAnalysis, sourcedomain.DetailAnalysis, *sourcedomain.MonthlySummary, error) {
	var basic sourcedomain.BasicAnalysis
	found, err := a.readFacet(FacetBasicAnalysis, month, &basic)
	if err != nil {
		return nil, nil, nil, err
	}

	var basicPtr *sourcedomain.BasicAnalysis
	if found {
		basicPtr = &basic
	}

	detail, err := a.readRawFacet(FacetDetailAnalysis, month)
	if err != nil {
		return nil, nil, nil, err
	}

	var summary sourcedomain.MonthlySummary
	found, err = a.readFacet(FacetMonthlySummary, month, &summary)
	if err != nil {
		return nil, nil, nil, err
	}

	var summaryPtr *sourcedomain.MonthlySummary
	if found {
		summaryPtr = &summary
	}

	return basicPtr, detail, summaryPtr, nil
}

func (a *FilesystemAdapter) LoadRetention(month domain.MonthKey) (*domain.RetentionReport, error) {
	var retention domain.RetentionReport
	found, err := a.readFacet(FacetRetentionAnalysis, month, &retention)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &retention, nil
}

// readFacet lê e decodifica um facet. Arquivo ausente retorna (false, nil);
// JSON inválido é classificado como malformado; o resto é falha de E/S.
func (a *FilesystemAdapter) readFacet(facet string, month domain.MonthKey, out any) (bool, error) {
	data, err := a.readRawFacet(facet, month)
	if err != nil {
		return false, err
	}

	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, &Error{
			Kind:  KindMalformed,
			Facet: facet,
			Month: month,
			Err:   err,
		}
	}

	return true, nil
}

func (a *FilesystemAdapter) readRawFacet(facet string, month domain.MonthKey) ([]byte, error) {
	path := filepath.Join(a.dir, FacetFileName(facet, month))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, &Error{
			Kind:  KindIO,
			Facet: facet,
			Month: month,
			Err:   errors.Wrap(err, "lendo arquivo de export"),
		}
	}

	return data, nil
}
