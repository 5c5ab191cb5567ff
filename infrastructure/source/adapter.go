// Package source implementa o contrato de origem dos dados mensais: resolução
// dos quatro facets pelo nome de arquivo, leitura do filesystem local e
// ingestão de ZIPs enviados pela interface.
package source

import (
	"errors"
	"fmt"

	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	sourcedomain "github.com/vfg2006/callcenter-analytics-api/infrastructure/source/domain"
)

// Rótulos dos facets. São a convenção de nomes dos arquivos exportados
// (基本分析_2024-09.json etc.) e precisam ser preservados byte a byte para
// compatibilidade com os exports existentes.
const (
	FacetBasicAnalysis     = "基本分析"
	FacetDetailAnalysis    = "詳細分析"
	FacetMonthlySummary    = "月次サマリー"
	FacetRetentionAnalysis = "定着率分析"
)

// FacetFileName monta o nome canônico do arquivo de um facet para um mês
func FacetFileName(facet string, month domain.MonthKey) string {
	return fmt.Sprintf("%s_%s.json", facet, month)
}

// ErrorKind classifica falhas do adaptador para que o chamador distinga
// "malformado" de "falha de E/S". Facet ausente não é erro: retorna nil, nil.
type ErrorKind int

const (
	KindMalformed ErrorKind = iota + 1
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error é um erro do adaptador de origem com a classificação anexada
type Error struct {
	Kind  ErrorKind
	Facet string
	Month domain.MonthKey
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("origem (%s) facet %s mês %s: %v", e.Kind, e.Facet, e.Month, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsMalformed informa se o erro é de dado presente porém inválido
func IsMalformed(err error) bool {
	var srcErr *Error
	return errors.As(err, &srcErr) && srcErr.Kind == KindMalformed
}

// IsIO informa se o erro é de leitura na origem
func IsIO(err error) bool {
	var srcErr *Error
	return errors.As(err, &srcErr) && srcErr.Kind == KindIO
}

// Adapter é o contrato consumido pelo pipeline de agregação. Qualquer facet
// pode voltar nil sem erro, significando "sem dados para este mês".
type Adapter interface {
	// Name identifica o adaptador em logs e chaves de cache
	Name() string

	// Version identifica a versão do dataset subjacente; muda quando os
	// arquivos mudam, invalidando entradas de cache por (mês, versão)
	Version() string

	// ListAvailableMonths retorna os meses com ao menos um facet presente,
	// do mais recente para o mais antigo
	ListAvailableMonths() ([]domain.MonthKey, error)

	// LoadActivityAndDeals carrega os facets 基本分析, 詳細分析 e 月次サマリー
	LoadActivityAndDeals(month domain.MonthKey) (*sourcedomain.BasicAnalysis, sourcedomain.DetailAnalysis, *sourcedomain.MonthlySummary, error)

	// LoadRetention carrega o facet 定着率分析
	LoadRetention(month domain.MonthKey) (*domain.RetentionReport, error)
}
