package main

import (
	"context"
	"log"

	"app-catalog-be/internal/bootstrap"
	"app-catalog-be/internal/config"
	"app-catalog-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 4. Regenerate the site so the public pages match the stored catalog.
	if err := container.StaticService.RebuildAll(); err != nil {
		log.Printf("Initial rebuild finished with errors: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
