package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/application/service"
	"github.com/quickmart/checkout-api/internal/config"
	domainRepo "github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/internal/infrastructure/csvstore"
	"github.com/quickmart/checkout-api/internal/infrastructure/database"
	infraRepo "github.com/quickmart/checkout-api/internal/infrastructure/repository"
	"github.com/quickmart/checkout-api/internal/presentation/http/handler"
	"github.com/quickmart/checkout-api/internal/presentation/http/routes"
	"github.com/quickmart/checkout-api/pkg/logger"
	"github.com/quickmart/checkout-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.App.Env)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	productRepo, cardRepo, err := buildRepositories(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize catalog")
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize printer, falling back to null printer")
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	basketService := service.NewBasketService(productRepo)
	receiptService := service.NewReceiptService()
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, cfg.Receipt.CurrencyMarker)

	// Initialize handlers
	h := &routes.Handlers{
		Checkout:     handler.NewCheckoutHandler(basketService, receiptService, printerService, cardRepo),
		Product:      handler.NewProductHandler(productRepo),
		DiscountCard: handler.NewDiscountCardHandler(cardRepo),
	}

	router := routes.Setup(h, cfg)

	logger.Info().Str("port", cfg.App.Port).Str("backend", cfg.Catalog.Backend).Msg("starting checkout API")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// buildRepositories wires the catalog and card directory from the configured
// backend: CSV files directly, or postgres seeded from the same files.
func buildRepositories(cfg *config.Config) (domainRepo.ProductRepository, domainRepo.DiscountCardRepository, error) {
	if cfg.Catalog.Backend == "postgres" {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		if err := database.SeedFromCSV(context.Background(), db, cfg.Catalog.ProductsPath, cfg.Catalog.CardsPath); err != nil {
			return nil, nil, err
		}
		return infraRepo.NewProductRepository(db), infraRepo.NewDiscountCardRepository(db), nil
	}

	productRepo, err := csvstore.LoadProducts(cfg.Catalog.ProductsPath)
	if err != nil {
		return nil, nil, err
	}
	cardRepo, err := csvstore.LoadDiscountCards(cfg.Catalog.CardsPath)
	if err != nil {
		return nil, nil, err
	}
	return productRepo, cardRepo, nil
}
