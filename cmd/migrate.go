package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	postgresStore "github.com/m04kA/SMC-AvailabilityService/pkg/docstore/postgres"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the documents table (postgres driver only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			// Mongo и Firestore создают коллекции при первой записи
			if cfg.Storage.Driver != config.StorageDriverPostgres {
				log.Info("Storage driver %s needs no migration", cfg.Storage.Driver)
				return nil
			}

			db, err := openPostgres(cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgresStore.NewStore(db).Migrate(context.Background()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			log.Info("Documents table is up to date")
			return nil
		},
	}
}
