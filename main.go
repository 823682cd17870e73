// @title Career Guidance API
// @version 1.0
// @description Backend for the career guidance platform: assessments, scoring,
// @description reports and the guidance directory.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"career_guidance_backend/internal/app"
	"career_guidance_backend/internal/config"
	"career_guidance_backend/pkg/configwatcher"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
