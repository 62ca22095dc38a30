package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/quickmart/checkout-api/internal/config"
	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/internal/infrastructure/csvstore"
	"github.com/quickmart/checkout-api/pkg/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logger.Info().Msg("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.DiscountCard{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info().Msg("database migrations completed")
	return nil
}

// SeedFromCSV imports the CSV product and discount card sources into the
// database so the postgres-backed repositories serve the same catalog as the
// file-backed ones. Existing rows are upserted by primary key.
func SeedFromCSV(ctx context.Context, db *gorm.DB, productPath, cardPath string) error {
	productRepo, err := csvstore.LoadProducts(productPath)
	if err != nil {
		return err
	}
	cardRepo, err := csvstore.LoadDiscountCards(cardPath)
	if err != nil {
		return err
	}

	products, err := productRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if err := db.WithContext(ctx).Save(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %d: %w", products[i].ID, err)
		}
	}

	cards, err := cardRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range cards {
		if err := db.WithContext(ctx).Save(&cards[i]).Error; err != nil {
			return fmt.Errorf("failed to seed discount card %d: %w", cards[i].Number, err)
		}
	}

	logger.Info().Int("products", len(products)).Int("cards", len(cards)).Msg("seeded catalog from CSV")
	return nil
}
