package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/metricsource"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := telemetry.NewMetrics()

	// a fonte de demonstração dispensa o banco
	var queryer postgres.Queryer
	if cfg.MetricSource.Kind == config.MetricSourceLive {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		queryer = pgConn
	}

	source, err := metricsource.New(cfg, queryer, metrics)
	if err != nil {
		log.L.Fatal(err)
	}
	log.L.WithField("metric_source", cfg.MetricSource.Kind).Info("Fonte de métricas configurada")

	analyzer := analyzing.NewService(cfg, source, metrics)
	authenticator := authenticating.NewService(cfg)

	refreshService := scheduler.NewDashboardRefreshService(analyzer, cfg, metrics)
	if err := refreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de atualização das visões")
	}
	defer refreshService.Stop()

	if !cfg.Auth.Enabled {
		log.L.Warn("Autenticação desabilitada: a empresa será lida do parâmetro tenant_id")
	}

	server, err := api.New(cfg, analyzer, authenticator, refreshService, metrics)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
