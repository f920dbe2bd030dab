package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/migration"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/api"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração do banco")
	}

	dashboardCache := newDashboardCache(ctx, cfg)

	recordRepo := repository.NewCampaignRecordRepository(pgConn)
	baselineRepo := repository.NewBaselineRepository(pgConn)

	campaignService := campaigning.NewService(recordRepo, dashboardCache)
	dashboardService := dashboarding.NewService(recordRepo, baselineRepo, dashboardCache, cfg.Dashboard.BaselineYears)

	baselineSyncService := scheduler.NewBaselineSyncService(
		recordRepo,
		baselineRepo,
		dashboardService,
		cfg,
	)

	if err := baselineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de médias")
	} else {
		logrus.Info("Agendador de sincronização de médias iniciado com sucesso")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server, err := api.New(
		cfg,
		campaignService,
		dashboardService,
		baselineSyncService,
		registry,
	)
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newDashboardCache usa o Redis quando habilitado; sem Redis o dashboard é sempre recalculado
func newDashboardCache(ctx context.Context, cfg *config.Config) cache.DashboardCache {
	if !cfg.Redis.Enabled {
		logrus.Info("Cache do dashboard desabilitado")
		return cache.NewNoopDashboardCache()
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache do dashboard")
		return cache.NewNoopDashboardCache()
	}

	logrus.WithField("addr", cfg.Redis.Addr).Info("Cache do dashboard conectado ao Redis")
	return cache.NewRedisDashboardCache(client, cfg.Dashboard.CacheTTL)
}
