package main

import (
	"Recette/cmd/config"
	migration "Recette/cmd/database/migrate"
	"Recette/internal/utils"
	"Recette/internal/utils/storage"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s3, err := storage.NewAwsS3(ctx)
	cancel()
	if err != nil {
		log.Fatalf("error creating storage client: %v", err)
	}

	app, err := config.NewApp(db, s3)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := config.Serve(app, ":"+utils.GetConfig("APP_PORT"), quit)
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if serveErr != nil {
		log.Fatalf("server stopped: %v", serveErr)
	}
}
