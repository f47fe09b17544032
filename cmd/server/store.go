package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"subversepay.backend/internal/config"
	domainrepos "subversepay.backend/internal/domain/repositories"
	"subversepay.backend/internal/infrastructure/memory"
	"subversepay.backend/internal/infrastructure/repositories"
	"subversepay.backend/internal/infrastructure/seed"
	"subversepay.backend/pkg/logger"
)

// storeDeps is the set of repositories the usecases run against.
type storeDeps struct {
	merchants        domainrepos.MerchantRepository
	alerts           domainrepos.AlertRepository
	settlements      domainrepos.SettlementRepository
	subscribers      domainrepos.SubscriberRepository
	churnPredictions domainrepos.ChurnPredictionRepository
	dashboard        domainrepos.DashboardRepository
	close            func()
}

// buildStore selects the record store named by STORE_DRIVER. Dashboard blocks
// always come from the in-memory seed.
func buildStore(ctx context.Context, cfg *config.Config) (*storeDeps, error) {
	data := seed.Load(now())
	mem := memory.NewStore(data)
	dashboard := memory.NewDashboardRepository(mem)

	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		return &storeDeps{
			merchants:        memory.NewMerchantRepository(mem),
			alerts:           memory.NewAlertRepository(mem),
			settlements:      memory.NewSettlementRepository(mem),
			subscribers:      memory.NewSubscriberRepository(mem),
			churnPredictions: memory.NewChurnPredictionRepository(mem),
			dashboard:        dashboard,
			close:            func() {},
		}, nil

	case config.StoreDriverPostgres:
		db, err := openDB(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get generic database object: %w", err)
		}
		closeDB := func() { _ = sqlDB.Close() }

		if err := repositories.Migrate(db); err != nil {
			closeDB()
			return nil, err
		}
		if cfg.Store.AutoSeed {
			seeded, err := repositories.SeedIfEmpty(ctx, db, data)
			if err != nil {
				closeDB()
				return nil, err
			}
			logger.Info(ctx, "Database ready", zap.Bool("seeded", seeded))
		}

		return &storeDeps{
			merchants:        repositories.NewMerchantRepository(db),
			alerts:           repositories.NewAlertRepository(db),
			settlements:      repositories.NewSettlementRepository(db),
			subscribers:      repositories.NewSubscriberRepository(db),
			churnPredictions: repositories.NewChurnPredictionRepository(db),
			dashboard:        dashboard,
			close:            closeDB,
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
