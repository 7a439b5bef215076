package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/database/postgres"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/api"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/scheduler"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/aggregating"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/alerting"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/benchmarking"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/refreshing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	entityRepo := repository.NewEntityRepository(pgConn)
	orderRepo := repository.NewOrderFactRepository(pgConn)
	adRepo := repository.NewAdFactRepository(pgConn)
	aggregateRepo := repository.NewAggregateRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	aggregator := aggregating.NewService(cfg.Mart, orderRepo, adRepo)
	benchmarker := benchmarking.NewService(cfg.Mart)
	alerter := alerting.NewService(cfg.Alerts, alertRepo)
	alertViews := alerting.NewViewService(cfg.Alerts, alertRepo)

	refresher := refreshing.NewService(
		cfg.Mart,
		entityRepo,
		aggregateRepo,
		aggregator,
		benchmarker,
		alerter,
	)

	martRefreshService := scheduler.NewMartRefreshService(refresher, cfg)
	if err := martRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the mart refresh scheduler")
	} else {
		logrus.Info("Mart refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		alertViews,
		aggregateRepo,
		refresher,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
