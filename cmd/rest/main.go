package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront-be/internal/bootstrap"
	"storefront-be/internal/config"
	"storefront-be/internal/server"
	"storefront-be/internal/tracer"
	"storefront-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer("storefront-be")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initial catalog load. Failures fall back to the built-in catalog.
	snap := container.CatalogService.Reload(ctx)
	log.Printf("Catalog ready: %d products (fallback=%t)", snap.Len(), snap.Fallback)

	// 5. Start Background Services
	go container.WebSocketHub.Run(ctx)
	go container.CatalogBroadcaster.Listen(ctx, func(ctx context.Context) {
		container.CatalogService.Reload(ctx)
	})
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
