package routes

import (
	"context"
	"fmt"
	"time"

	"estimaflow/internal/adapter/persistence/repository"
	"estimaflow/internal/config"
	"estimaflow/internal/infrastructure/database"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase/interfaces"
)

type stores struct {
	estimations interfaces.IEstimationRepository
	projects    interfaces.IProjectRepository
	users       interfaces.IUserRepository
	close       func() error
}

func (s stores) Close() {
	if s.close == nil {
		return
	}
	if err := s.close(); err != nil {
		logger.Global().Warn().Err(err).Msg("closing store")
	}
}

// openStores builds the repositories selected by STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.StoreKind {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return stores{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		tables := database.DynamoTables{
			Estimations: cfg.EstimationsTable,
			Projects:    cfg.ProjectsTable,
			Users:       cfg.UsersTable,
		}
		if err := database.EnsureDynamoTables(ctx, ddb, tables); err != nil {
			return stores{}, fmt.Errorf("ensure dynamodb tables: %w", err)
		}
		return seeded(ctx, cfg, stores{
			estimations: repository.NewEstimationDynamoRepository(ddb, tables.Estimations),
			projects:    repository.NewProjectDynamoRepository(ddb, tables.Projects),
			users:       repository.NewUserDynamoRepository(ddb, tables.Users),
		})

	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, database.PostgresPool{})
		if err != nil {
			return stores{}, err
		}
		if err := database.MigratePostgres(ctx, db); err != nil {
			db.Close()
			return stores{}, err
		}
		return seeded(ctx, cfg, stores{
			estimations: repository.NewEstimationPostgresRepository(db),
			projects:    repository.NewProjectPostgresRepository(db),
			users:       repository.NewUserPostgresRepository(db),
			close:       db.Close,
		})

	default:
		return seeded(ctx, cfg, newMemoryStores(cfg.MemoryLatency))
	}
}

func newMemoryStores(latency time.Duration) stores {
	return stores{
		estimations: repository.NewEstimationMemoryRepository(latency),
		projects:    repository.NewProjectMemoryRepository(latency),
		users:       repository.NewUserMemoryRepository(),
	}
}

func seeded(ctx context.Context, cfg *config.Config, st stores) (stores, error) {
	if !cfg.SeedDemoData {
		return st, nil
	}
	if err := repository.SeedDemoData(ctx, st.estimations, st.projects, time.Now().UTC()); err != nil {
		st.Close()
		return stores{}, fmt.Errorf("seed demo data: %w", err)
	}
	logger.Global().Info().Msg("demo data seeded")
	return st, nil
}
