package main

import (
	"context"
	"fmt"
	"log"
	"time"

	localMigration "seoulier/internal/migrations/local"
	mongoMigration "seoulier/internal/migrations/mongo"
	"seoulier/pkg/config"
)

const JobName = "migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()
	cfg := config.Load(JobName)

	if cfg.UsesLocalStore() {
		cfg.Log.Info("Starting local store migration job", "path", cfg.LocalStorePath)
		if err := localMigration.RunMigration(cfg.LocalStorePath); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	} else {
		cfg.SetMongo()
		cfg.Log.Info("Starting Mongo migration job")
		defer cfg.GracefulShutdown()
		if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	fmt.Println("Migration completed successfully.")
}
