package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
	firestoreStore "github.com/m04kA/SMC-AvailabilityService/pkg/docstore/firestore"
	memoryStore "github.com/m04kA/SMC-AvailabilityService/pkg/docstore/memory"
	mongoStore "github.com/m04kA/SMC-AvailabilityService/pkg/docstore/mongo"
	postgresStore "github.com/m04kA/SMC-AvailabilityService/pkg/docstore/postgres"
	"github.com/m04kA/SMC-AvailabilityService/pkg/firebaseapp"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

// loadRuntime читает конфигурацию и поднимает логгер
func loadRuntime(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Configuration loaded from %s", configPath)
	return cfg, log, nil
}

// openPostgres открывает пул соединений и проверяет его
func openPostgres(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	return db, nil
}

// openStore выбирает хранилище документов по storage.driver.
// Возвращаемая функция освобождает соединения. Если recorder задан,
// запросы к postgres учитываются в метриках.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger, recorder dbmetrics.Recorder) (docstore.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := openPostgres(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if recorder == nil {
			return postgresStore.NewStore(db), func() { db.Close() }, nil
		}

		stopCh := make(chan struct{})
		closer := func() {
			close(stopCh)
			db.Close()
		}
		return postgresStore.NewStore(dbmetrics.WrapWithDefault(db, recorder, stopCh)), closer, nil

	case config.StorageDriverMongo:
		timeout := time.Duration(cfg.Mongo.Timeout) * time.Second
		connectCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI).SetTimeout(timeout))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
		}

		log.Info("Successfully connected to mongo (db=%s)", cfg.Mongo.Database)
		closer := func() { _ = client.Disconnect(context.Background()) }
		return mongoStore.NewStore(client.Database(cfg.Mongo.Database)), closer, nil

	case config.StorageDriverFirestore:
		app, err := firebaseapp.New(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create firestore client: %w", err)
		}

		log.Info("Firestore client initialized (project=%s)", cfg.Firebase.ProjectID)
		return firestoreStore.NewStore(client), func() { client.Close() }, nil

	case config.StorageDriverMemory:
		log.Warn("Using in-memory document store, data is lost on restart")
		return memoryStore.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
