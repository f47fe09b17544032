package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"subversepay.backend/internal/infrastructure/models"
	"subversepay.backend/internal/infrastructure/seed"
)

// nextSeq orders rows created at runtime after every seeded row.
var nextSeq = func() int64 { return time.Now().UnixNano() }

// Migrate creates or updates every table of the relational driver.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Seed inserts the dataset in one transaction. Rows whose id already exists
// are left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, data *seed.Dataset) error {
	return NewUnitOfWork(db).Do(ctx, func(ctx context.Context) error {
		tx := GetDB(ctx, db)

		merchants := make([]models.Merchant, 0, len(data.Merchants))
		for i, m := range data.Merchants {
			row := merchantToModel(m)
			row.Seq = int64(i + 1)
			merchants = append(merchants, *row)
		}
		alerts := make([]models.Alert, 0, len(data.Alerts))
		for i, a := range data.Alerts {
			row := alertToModel(a)
			row.Seq = int64(i + 1)
			alerts = append(alerts, *row)
		}
		settlements := make([]models.Settlement, 0, len(data.Settlements))
		for i, s := range data.Settlements {
			row := settlementToModel(s)
			row.Seq = int64(i + 1)
			settlements = append(settlements, *row)
		}
		subscribers := make([]models.Subscriber, 0, len(data.Subscribers))
		for i, s := range data.Subscribers {
			row := subscriberToModel(s)
			row.Seq = int64(i + 1)
			subscribers = append(subscribers, *row)
		}
		predictions := make([]models.ChurnPrediction, 0, len(data.ChurnPredictions))
		for i, p := range data.ChurnPredictions {
			row := churnPredictionToModel(p)
			row.Seq = int64(i + 1)
			predictions = append(predictions, *row)
		}

		if err := createBatch(tx, merchants); err != nil {
			return err
		}
		if err := createBatch(tx, alerts); err != nil {
			return err
		}
		if err := createBatch(tx, settlements); err != nil {
			return err
		}
		if err := createBatch(tx, subscribers); err != nil {
			return err
		}
		return createBatch(tx, predictions)
	})
}

func createBatch[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}
	return nil
}

// SeedIfEmpty seeds only when the merchants table has no rows.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, data *seed.Dataset) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Merchant{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := Seed(ctx, db, data); err != nil {
		return false, err
	}
	return true, nil
}
