package main

import (
	"context"
	"time"

	"github.com/pricepal/pricepal-api/infrastructure/database/postgres"
	"github.com/pricepal/pricepal-api/infrastructure/migration"
	"github.com/pricepal/pricepal-api/infrastructure/repository"
	"github.com/pricepal/pricepal-api/internal/api"
	"github.com/pricepal/pricepal-api/internal/config"
	"github.com/pricepal/pricepal-api/internal/scheduler"
	"github.com/pricepal/pricepal-api/internal/usecases/authenticating"
	"github.com/pricepal/pricepal-api/internal/usecases/catalog"
	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
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

	if err := migration.Run(pgConn.DB, cfg.Database.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("Failed to run database migrations")
	}

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)
	priceEntryRepo := repository.NewPriceEntryRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	catalogService := catalog.NewService(productRepo, supplierRepo)
	pricingService := pricing.NewService(priceEntryRepo, productRepo, supplierRepo, alertRepo)

	alertService := scheduler.NewPriceAlertService(userRepo, priceEntryRepo, alertRepo, cfg)
	if err := alertService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start price alert scheduler")
	} else {
		logrus.Info("Price alert scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		pricingService,
		alertService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
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
