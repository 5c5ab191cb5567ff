package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/repository"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/config"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
	CacheTTL      time.Duration
}

// ReportSyncService pré-aquece o cache de relatórios dos meses recentes e
// remove entradas velhas ou de versões antigas da origem
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	source              source.Adapter
	reporter            aggregating.Reporter
	reportRepo          repository.MonthlyReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do serviço de sincronização de
// relatórios
func NewReportSyncService(
	adapter source.Adapter,
	reporter aggregating.Reporter,
	reportRepo repository.MonthlyReportRepository,
	appConfig *config.Config,
) *ReportSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReportSyncConfig{
		CronSchedule:  appConfig.ReportSync.CronSchedule,
		SyncEnabled:   appConfig.ReportSync.Enabled,
		MonthLookBack: appConfig.ReportSync.MonthLookBack,
		CacheTTL:      appConfig.ReportCache.TTL,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		source:      adapter,
		reporter:    reporter,
		reportRepo:  reportRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios")

	// Agendar a sincronização de relatórios
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports reconstrói os relatórios dos meses mais recentes e limpa o cache
func (s *ReportSyncService) syncReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de relatórios mensais")

	months, err := s.source.ListAvailableMonths()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar meses disponíveis na origem")
		return
	}

	if len(months) == 0 {
		logrus.Info("Nenhum mês disponível na origem para sincronização")
		return
	}

	if s.config.MonthLookBack > 0 && len(months) > s.config.MonthLookBack {
		months = months[:s.config.MonthLookBack]
	}

	synced := 0
	for _, month := range months {
		// GetMonthlyReport sem filtro passa pelo cache: meses já na versão
		// atual são baratos, os demais são recalculados e salvos
		if _, err := s.reporter.GetMonthlyReport(month, nil); err != nil {
			logrus.WithError(err).WithField("month", month).Error("Erro ao sincronizar relatório do mês")
			continue
		}
		synced++
	}

	s.cleanupCache()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"months":   len(months),
		"synced":   synced,
	}).Info("Sincronização de relatórios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// cleanupCache remove entradas de versões antigas da origem e entradas não
// atualizadas dentro do TTL
func (s *ReportSyncService) cleanupCache() {
	if s.reportRepo == nil {
		return
	}

	removed, err := s.reportRepo.DeleteByVersionNot(s.source.Version())
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover relatórios de versões antigas")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Relatórios de versões antigas removidos do cache")
	}

	if s.config.CacheTTL > 0 {
		removed, err := s.reportRepo.DeleteOlderThan(s.config.CacheTTL)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover relatórios expirados")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Relatórios expirados removidos do cache")
		}
	}
}

// TriggerManualSync inicia manualmente uma sincronização de relatórios
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de relatórios")
	go s.syncReports()
}

// GetStatus retorna o status atual da sincronização
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
