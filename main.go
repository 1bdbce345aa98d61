package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logger.WithError(err).Fatal("config.Validate")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	migration, err := storage.Migrate(envConfig.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("storage.Migrate")
		return
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  migration.PreviousVersion,
		"postMigrationVersion": migration.CurrentVersion,
	}).Info("Migration status")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	publisher := newPublisher(logger, envConfig)
	if closer, ok := publisher.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	svc := service.NewService(dbStorage, delegator, publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userID := envConfig.DefaultUserID
	if envConfig.SeedDemoData {
		user, createdCategories, err := svc.Seed.EnsureDemoData(ctx)
		if err != nil {
			logger.WithError(err).Error("service.Seed.EnsureDemoData")
			return
		}
		userID = user.ID
		logger.WithFields(logrus.Fields{
			"userID":            user.ID,
			"createdCategories": createdCategories,
		}).Info("Demo data ready")
	}

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.HTTPPort,
		Service:        svc,
		UserID:         userID,
		AllowedOrigins: envConfig.CORSAllowedOrigins,
		Pinger:         dbStorage,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpRest.Serve(groupCtx)
	})
	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("finance-server stopped")
		return
	}
	logger.Info("finance-server stopped")
}

// newPublisher connects to the broker when one is configured. Events are
// optional, so a failed connection falls back to not publishing.
func newPublisher(logger *logrus.Logger, envConfig *config.Config) events.Publisher {
	if envConfig.AMQPURL == "" {
		return events.NopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange)
	if err != nil {
		logger.WithError(err).Warn("events.NewAMQPPublisher")
		return events.NopPublisher{}
	}
	return publisher
}
