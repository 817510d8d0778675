// Command livraria creates the bookstore tables in ./livraria.db.
//
// It takes no flags. Running it again is harmless: tables that already exist
// are left as they are. The exit status is non-zero if the store cannot be
// opened or written.
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"livraria/internal/config"
	"livraria/internal/repository/sqlite"
)

func main() {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		logrus.WithError(err).WithField("path", cfgPath).Fatal("failed to load config")
	}

	log, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("failed to configure logging")
	}
	if cfgPath != "" {
		log.WithField("path", cfgPath).Debug("loaded config")
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.WithError(err).WithField("path", cfg.Database.Path).Fatal("bootstrap failed")
	}
}

// run opens the store, creates any missing tables and releases the store
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	err = store.Bootstrap(ctx,
		sqlite.WithLogger(log),
		sqlite.WithEcho(cfg.Database.Echo),
	)
	if err != nil {
		return err
	}

	tables, err := store.Tables(ctx)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path":   cfg.Database.Path,
		"tables": len(tables),
	}).Info("schema ready")

	return nil
}
