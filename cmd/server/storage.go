package main

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/config"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/database"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/repository"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/transport"
)

// storageBackend is the record repository selected by STORAGE_BACKEND
type storageBackend struct {
	name    string
	records store.RecordRepository
	health  transport.HealthCheck
	cleanup func()
}

func newStorageBackend(cfg config.AppConfig, lg log.Logger) (*storageBackend, error) {
	switch cfg.StorageConfig.Backend {
	case config.BackendMemory:
		level.Warn(lg).Log("msg", "memory storage selected, campaigns are lost on restart")
		return &storageBackend{name: config.BackendMemory, records: repository.NewMemoryRepository()}, nil

	case config.BackendFile:
		repo, err := repository.NewFileRepository(cfg.StorageConfig.FilePath)
		if err != nil {
			return nil, err
		}
		return &storageBackend{name: config.BackendFile, records: repo}, nil

	case config.BackendRedis:
		repo, err := repository.NewRedisRepository(cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return &storageBackend{
			name:    config.BackendRedis,
			records: repo,
			health:  repo.HealthCheck,
			cleanup: func() {
				if err := repo.Close(); err != nil {
					level.Error(lg).Log("msg", "error closing redis connection", "err", err)
				}
			},
		}, nil

	case config.BackendPostgres:
		db, cleanup, err := database.Initialize(cfg.DatabaseConfig, lg)
		if err != nil {
			return nil, err
		}
		return &storageBackend{
			name:    config.BackendPostgres,
			records: repository.NewPostgresRepository(db),
			health:  db.HealthCheck,
			cleanup: cleanup,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q, expected one of %s, %s, %s, %s",
			cfg.StorageConfig.Backend, config.BackendMemory, config.BackendFile, config.BackendRedis, config.BackendPostgres)
	}
}

func (b *storageBackend) instrumented(m *metrics.Metrics) store.RecordRepository {
	return repository.NewInstrumentedRepository(b.records, b.name, m)
}

func (b *storageBackend) healthChecks() map[string]transport.HealthCheck {
	if b.health == nil {
		return nil
	}
	return map[string]transport.HealthCheck{"storage": b.health}
}

func (b *storageBackend) close() {
	if b.cleanup != nil {
		b.cleanup()
	}
}
