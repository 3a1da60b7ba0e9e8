// Command db_init creates the expense schema in the configured database
// file. The server also initializes the schema at startup; this exists to
// provision a database ahead of deployment.
package main

import (
	"context"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	if err := store.InitSchema(context.Background()); err != nil {
		logrus.WithError(err).Fatal("storage.InitSchema")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dbPath": env.DBPath,
	}).Info("Schema initialized")
}
