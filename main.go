package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/taxonomy"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dbStorage.InitSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("storage.InitSchema")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.WriteWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	server := api.Server{
		Logger:    logger,
		Port:      envConfig.Port,
		Transport: envConfig.Transport,
		Service:   svc,
		Taxonomy:  taxonomy.NewProvider(envConfig.TaxonomyPath),
	}

	if err := server.Serve(ctx); err != nil {
		logrus.WithError(err).Fatal("api.Server.Serve")
	}
}
