package aggregating

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/repository"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/extracting"
)

// Service implementa a interface Reporter sobre um adaptador de origem,
// opcionalmente com cache de relatórios por (mês, versão da origem)
type Service struct {
	source           source.Adapter
	reportRepository repository.MonthlyReportRepository
	useCache         bool
}

// NewService cria uma nova instância do serviço de agregação
func NewService(adapter source.Adapter) *Service {
	return &Service{
		source:   adapter,
		useCache: false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache de relatórios mensais no banco
func (s *Service) WithCache(reportRepo repository.MonthlyReportRepository) *Service {
	s.reportRepository = reportRepo
	s.useCache = reportRepo != nil
	return s
}

// GetAvailableMonths retorna os meses com dados na origem, do mais recente
// para o mais antigo, e os anos distintos para os seletores da interface
func (s *Service) GetAvailableMonths() (*domain.AvailableMonths, error) {
	months, err := s.source.ListAvailableMonths()
	if err != nil {
		return nil, err
	}

	years := make([]string, 0)
	seen := map[string]struct{}{}
	for _, month := range months {
		year := month[:4]
		if _, ok := seen[year]; !ok {
			seen[year] = struct{}{}
			years = append(years, year)
		}
	}

	return &domain.AvailableMonths{
		Months: months,
		Years:  years,
	}, nil
}

// GetMonthlyReport monta o relatório completo de um mês. Relatórios sem
// filtro podem vir do cache; qualquer filtro força o recálculo porque a
// chave de cache não codifica filtros.
func (s *Service) GetMonthlyReport(month domain.MonthKey, filters *domain.ReportFilters) (*domain.MonthlyReport, error) {
	if err := domain.ValidateMonthKey(month); err != nil {
		return nil, err
	}

	if s.useCache && filtersEmpty(filters) {
		version := s.source.Version()

		entry, err := s.reportRepository.GetByMonthAndVersion(month, version)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"month":   month,
				"version": version,
			}).Error("Erro ao buscar relatório mensal no cache")
		} else if entry != nil && entry.Report != nil {
			return entry.Report, nil
		}
	}

	report, err := s.buildReport(month, filters)
	if err != nil {
		return nil, err
	}

	if s.useCache && filtersEmpty(filters) {
		if err := s.reportRepository.SaveOrUpdate(&repository.MonthlyReportEntry{
			Month:         month,
			SourceVersion: report.SourceVersion,
			Report:        report,
		}); err != nil {
			// Falha de cache não derruba a resposta
			logrus.WithError(err).WithField("month", month).Error("Erro ao salvar relatório mensal no cache")
		}
	}

	return report, nil
}

func (s *Service) buildReport(month domain.MonthKey, filters *domain.ReportFilters) (*domain.MonthlyReport, error) {
	dataset, err := s.loadDataset(month)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyReport{
		Month:               month,
		SourceVersion:       s.source.Version(),
		GeneratedAt:         time.Now().UTC(),
		KeyMetrics:          KeyMetricsFor(dataset, filters),
		Staff:               RollupByDimension(dataset, domain.DimensionStaff, filters),
		Branch:              RollupByDimension(dataset, domain.DimensionBranch, filters),
		Product:             RollupByDimension(dataset, domain.DimensionProduct, filters),
		Tenure:              RollupByDimension(dataset, domain.DimensionTenure, filters),
		DealStatusBreakdown: dataset.DealStatusBreakdown,
		Retention:           dataset.Retention,
	}, nil
}

// GetMonthComparison re-executa o rollup de cada mês da janela de forma
// independente. Um mês quebrado ou ausente vira uma entrada HasData=false —
// a lacuna aparece no gráfico, os demais meses não são afetados.
func (s *Service) GetMonthComparison(month domain.MonthKey, months int, filters *domain.ReportFilters) ([]*domain.MonthComparisonEntry, error) {
	window, err := domain.ComparisonMonths(month, months)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.MonthComparisonEntry, 0, len(window))
	for _, m := range window {
		dataset, err := s.loadDataset(m)
		if err != nil {
			if err != ErrMonthNotFound {
				logrus.WithError(err).WithField("month", m).Warn("Mês pulado na comparação por falha de carga")
			}
			entries = append(entries, &domain.MonthComparisonEntry{Month: m})
			continue
		}

		keyMetrics := KeyMetricsFor(dataset, filters)
		entries = append(entries, &domain.MonthComparisonEntry{
			Month:      m,
			HasData:    dataset.HasActivity(),
			KeyMetrics: &keyMetrics,
			Staff:      RollupByDimension(dataset, domain.DimensionStaff, filters),
		})
	}

	return entries, nil
}

// GetRollup calcula o rollup de uma única dimensão
func (s *Service) GetRollup(month domain.MonthKey, dimension domain.Dimension, filters *domain.ReportFilters) ([]domain.RollupRow, error) {
	if !domain.ValidDimension(dimension) {
		return nil, ErrUnknownDimension
	}

	dataset, err := s.loadDataset(month)
	if err != nil {
		return nil, err
	}

	return RollupByDimension(dataset, dimension, filters), nil
}

// GetRanking ordena o rollup por operador pela métrica com posições por
// competição
func (s *Service) GetRanking(month domain.MonthKey, metric string, limit int, minDeals int, filters *domain.ReportFilters) ([]domain.RankedRow, error) {
	if !domain.KnownMetric(metric) {
		return nil, ErrUnknownMetric
	}

	dataset, err := s.loadDataset(month)
	if err != nil {
		return nil, err
	}

	rows := RollupByDimension(dataset, domain.DimensionStaff, filters)

	return RankRows(rows, metric, limit, minDeals), nil
}

// GetStaffTrend monta a série temporal da métrica por operador ao longo da
// janela. Mês sem dado para o operador fica null na série — nunca 0.
func (s *Service) GetStaffTrend(month domain.MonthKey, metric string, months int, filters *domain.ReportFilters) (*domain.StaffTrend, error) {
	if !domain.KnownMetric(metric) {
		return nil, ErrUnknownMetric
	}

	window, err := domain.ComparisonMonths(month, months)
	if err != nil {
		return nil, err
	}

	perMonth := s.staffRollupsForWindow(window, filters)

	type staffInfo struct {
		branch string
	}
	staffIndex := map[string]staffInfo{}
	for _, rows := range perMonth {
		for _, row := range rows {
			if _, ok := staffIndex[row.Key]; !ok {
				staffIndex[row.Key] = staffInfo{branch: row.Branch}
			}
		}
	}

	names := make([]string, 0, len(staffIndex))
	for name := range staffIndex {
		names = append(names, name)
	}
	sort.Strings(names)

	trend := &domain.StaffTrend{
		Metric: metric,
		Months: window,
		Series: make([]domain.TrendSeries, 0, len(names)),
	}

	for _, name := range names {
		series := domain.TrendSeries{
			StaffName: name,
			Branch:    staffIndex[name].branch,
			Values:    make([]*domain.Metric, len(window)),
		}

		for i, m := range window {
			for _, row := range perMonth[m] {
				if row.Key == name {
					value, _ := domain.RollupMetric(row, metric)
					metricValue := domain.Metric(value)
					series.Values[i] = &metricValue
					break
				}
			}
		}

		trend.Series = append(trend.Series, series)
	}

	return trend, nil
}

// GetMetricDistribution monta os histogramas mensais da métrica com bordas de
// bin compartilhadas entre os meses da janela
func (s *Service) GetMetricDistribution(month domain.MonthKey, metric string, months int, filters *domain.ReportFilters) (*domain.MetricHistogram, error) {
	if !domain.KnownMetric(metric) {
		return nil, ErrUnknownMetric
	}

	window, err := domain.ComparisonMonths(month, months)
	if err != nil {
		return nil, err
	}

	perMonth := s.staffRollupsForWindow(window, filters)

	values := map[domain.MonthKey][]float64{}
	for m, rows := range perMonth {
		monthValues := make([]float64, 0, len(rows))
		for _, row := range rows {
			value, ok := domain.RollupMetric(row, metric)
			if !ok || value != value {
				// NaN não entra na distribuição
				continue
			}
			monthValues = append(monthValues, value)
		}
		values[m] = monthValues
	}

	return BuildHistogram(metric, window, values), nil
}

// staffRollupsForWindow carrega e agrega cada mês da janela de forma
// independente; meses com falha são pulados com log
func (s *Service) staffRollupsForWindow(window []domain.MonthKey, filters *domain.ReportFilters) map[domain.MonthKey][]domain.RollupRow {
	perMonth := map[domain.MonthKey][]domain.RollupRow{}

	for _, m := range window {
		dataset, err := s.loadDataset(m)
		if err != nil {
			if err != ErrMonthNotFound {
				logrus.WithError(err).WithField("month", m).Warn("Mês pulado na janela por falha de carga")
			}
			continue
		}

		perMonth[m] = RollupByDimension(dataset, domain.DimensionStaff, filters)
	}

	return perMonth
}

// GetRetention retorna o relatório de retenção do mês
func (s *Service) GetRetention(month domain.MonthKey) (*domain.RetentionReport, error) {
	if err := domain.ValidateMonthKey(month); err != nil {
		return nil, err
	}

	retention, err := s.source.LoadRetention(month)
	if err != nil {
		return nil, err
	}

	if retention == nil {
		return nil, ErrMonthNotFound
	}

	return retention, nil
}

// GetDetailFacet repassa o facet 詳細分析 bruto, sem interpretar o conteúdo
func (s *Service) GetDetailFacet(month domain.MonthKey) (json.RawMessage, error) {
	if err := domain.ValidateMonthKey(month); err != nil {
		return nil, err
	}

	_, detail, _, err := s.source.LoadActivityAndDeals(month)
	if err != nil {
		return nil, err
	}

	if detail == nil {
		return nil, ErrMonthNotFound
	}

	return json.RawMessage(detail), nil
}

// loadDataset carrega os facets do mês e normaliza para o dataset canônico.
// Retenção é enriquecimento: falha ali não derruba o relatório, só gera log.
func (s *Service) loadDataset(month domain.MonthKey) (*domain.MonthDataset, error) {
	if err := domain.ValidateMonthKey(month); err != nil {
		return nil, err
	}

	basic, _, summary, err := s.source.LoadActivityAndDeals(month)
	if err != nil {
		return nil, err
	}

	if basic == nil && summary == nil {
		return nil, ErrMonthNotFound
	}

	retention, err := s.source.LoadRetention(month)
	if err != nil {
		logrus.WithError(err).WithField("month", month).Warn("Retenção ignorada no relatório por falha de carga")
		retention = nil
	}

	return extracting.BuildDataset(month, basic, summary, retention), nil
}

func filtersEmpty(filters *domain.ReportFilters) bool {
	return filters == nil || (len(filters.StaffNames) == 0 && len(filters.Branches) == 0)
}
