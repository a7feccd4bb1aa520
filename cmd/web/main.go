package main

import (
	"net/http"
	"os"

	"github.com/AdamBeresnev/padel-rounds/internal/config"
	"github.com/AdamBeresnev/padel-rounds/internal/db"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logrus.SetLevel(cfg.Log.LogLevel())

	database, err := db.InitDB(cfg.DB.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB, cfg.DB.Migrations); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.Session.Lifetime
	sessionManager.Store = sqlite3store.New(database.DB)

	router := newRouter(sessionManager, database)

	logrus.WithField("addr", cfg.HTTP.Addr).Info("server starting")
	if err := http.ListenAndServe(cfg.HTTP.Addr, router); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
