package main

import (
	"context"
	"os"

	"storefront-be/internal/config"
	"storefront-be/internal/mapper"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/catalog"
	"storefront-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Seeds the products table with the built-in catalog when it is empty.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	count, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		color.Red("Failed to count products: %v", err)
		os.Exit(1)
	}
	if count > 0 {
		color.Yellow("Catalog already has %d products, skipping", count)
		return
	}

	color.Cyan("Seeding catalog...")

	if err := uow.Begin(ctx); err != nil {
		color.Red("Failed to begin transaction: %v", err)
		os.Exit(1)
	}

	m := mapper.NewProductMapper()
	for _, p := range catalog.FallbackProducts() {
		product := m.FromCatalog(p)
		product.Id = uuid.New()
		if err := uow.ProductRepository().Create(ctx, product); err != nil {
			_ = uow.Rollback()
			color.Red("Failed to create %s: %v", p.Name, err)
			os.Exit(1)
		}
		color.Green("Created %s (%s, $%.2f)", p.Name, p.Category, p.Price)
	}

	if err := uow.Commit(); err != nil {
		color.Red("Failed to commit: %v", err)
		os.Exit(1)
	}

	color.Cyan("Catalog seeding completed!")
}
