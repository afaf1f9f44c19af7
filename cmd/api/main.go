package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/cache"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/infrastructure/watcher"
	"github.com/vfg2006/profitability-api/internal/api"
	"github.com/vfg2006/profitability-api/internal/api/handler"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/scheduler"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/internal/usecases/authenticating"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
	"github.com/vfg2006/profitability-api/internal/usecases/configuring"
	"github.com/vfg2006/profitability-api/internal/usecases/contracting"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
	"github.com/vfg2006/profitability-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	summaryCache := newSummaryCache(ctx, cfg.Redis)

	entryRepo := repository.NewTimeEntryRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	healthInputRepo := repository.NewHealthInputRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)
	profitabilityService := aggregating.NewService(entryRepo, employeeRepo, clientRepo, summaryCache)
	configurator := configuring.NewService(employeeRepo, clientRepo)
	importer := importing.NewService(pgConn, entryRepo, employeeRepo, clientRepo)
	contractReader := contracting.NewService(clientRepo)
	healthScorer := scoring.NewService(healthInputRepo, clientRepo)
	backupService := backup.NewService(pgConn, entryRepo, employeeRepo, clientRepo, healthInputRepo)

	backupSyncService := scheduler.NewBackupSyncService(backupService, cfg)
	healthDigestService := scheduler.NewHealthDigestService(healthScorer, cfg)

	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup")
	}

	if err := healthDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de saúde")
	}

	importWatcher := watcher.NewImportWatcher(importer, cfg.ImportWatcher)
	if err := importWatcher.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitoramento da pasta de importação")
	}

	server, err := api.New(cfg, api.Services{
		Database:       pgConn,
		Authenticator:  authenticator,
		Profitability:  profitabilityService,
		Configurator:   configurator,
		Importer:       importer,
		ContractReader: contractReader,
		HealthScorer:   healthScorer,
		Backuper:       backupService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeBackup:       backupSyncService,
			handler.CronJobTypeHealthDigest: healthDigestService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newSummaryCache usa o Redis quando habilitado; sem ele os resumos são sempre recalculados
func newSummaryCache(ctx context.Context, redisConfig config.Redis) cache.Cache {
	if !redisConfig.Enabled {
		logrus.Info("Cache Redis desabilitado")
		return cache.Noop{}
	}

	redisCache, err := cache.NewRedisCache(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		return cache.Noop{}
	}

	return redisCache
}
