package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	result, err := storage.Migrate(env.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("storage.Migrate")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreviousVersion,
		"postMigrationVersion": result.CurrentVersion,
		"dirty":                result.Dirty,
	}).Info("Migration status")
}
