package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/repository"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/api"
	"github.com/vfg2006/callcenter-analytics-api/internal/config"
	"github.com/vfg2006/callcenter-analytics-api/internal/scheduler"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sourceAdapter := source.NewFilesystemAdapter(cfg.DataSource.Dir)
	logrus.WithFields(logrus.Fields{
		"dir":     cfg.DataSource.Dir,
		"version": sourceAdapter.Version(),
	}).Info("Adaptador de origem inicializado")

	reportService := aggregating.NewService(sourceAdapter)

	// O banco só serve de cache de relatórios: sem ele a API funciona
	// recalculando tudo a cada requisição
	var reportRepo repository.MonthlyReportRepository
	if cfg.Database.Enabled && cfg.ReportCache.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		reportRepo = repository.NewMonthlyReportRepository(pgConn)
		reportService = reportService.WithCache(reportRepo)
		logrus.Info("Cache de relatórios habilitado")
	} else {
		logrus.Info("Cache de relatórios desabilitado, relatórios calculados sob demanda")
	}

	// Inicializa o agendador de sincronização de relatórios
	reportSyncService := scheduler.NewReportSyncService(
		sourceAdapter,
		reportService,
		reportRepo,
		cfg,
	)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios")
	} else {
		logrus.Info("Agendador de sincronização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		sourceAdapter,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
