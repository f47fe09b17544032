package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"subversepay.backend/internal/config"
	"subversepay.backend/internal/infrastructure/datasources/postgres"
	"subversepay.backend/internal/infrastructure/repositories"
	"subversepay.backend/internal/infrastructure/seed"
)

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	openDB  func(cfg config.DatabaseConfig) (*gorm.DB, error)
	now     func() time.Time
	out     io.Writer
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		openDB: func(cfg config.DatabaseConfig) (*gorm.DB, error) {
			sqlDB, err := postgres.NewConnection(cfg)
			if err != nil {
				return nil, err
			}
			return postgres.OpenGorm(sqlDB)
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func runSeed(args []string, deps seedDeps) error {
	def := defaultSeedDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.openDB == nil {
		deps.openDB = def.openDB
	}
	if deps.now == nil {
		deps.now = def.now
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(deps.out)
	migrateOnly := fs.Bool("migrate-only", false, "create tables without inserting fixtures")
	force := fs.Bool("force", false, "insert fixtures even when merchants already exist (existing ids are kept)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	db, err := deps.openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to init sql db: %w", err)
	}
	defer sqlDB.Close()

	if err := repositories.Migrate(db); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(deps.out, "Schema migrated")
	if *migrateOnly {
		return nil
	}

	ctx := context.Background()
	data := seed.Load(deps.now())
	if *force {
		if err := repositories.Seed(ctx, db, data); err != nil {
			return err
		}
	} else {
		seeded, err := repositories.SeedIfEmpty(ctx, db, data)
		if err != nil {
			return err
		}
		if !seeded {
			_, _ = fmt.Fprintln(deps.out, "Merchants already present, skipping fixtures (use -force to top up)")
			return nil
		}
	}

	_, _ = fmt.Fprintf(deps.out, "merchants=%d\n", len(data.Merchants))
	_, _ = fmt.Fprintf(deps.out, "alerts=%d\n", len(data.Alerts))
	_, _ = fmt.Fprintf(deps.out, "settlements=%d\n", len(data.Settlements))
	_, _ = fmt.Fprintf(deps.out, "subscribers=%d\n", len(data.Subscribers))
	_, _ = fmt.Fprintf(deps.out, "churn_predictions=%d\n", len(data.ChurnPredictions))
	return nil
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
