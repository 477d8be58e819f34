package main

import (
	"log"

	"github.com/farellandr/ticketservice/config"
	"github.com/farellandr/ticketservice/internal/logger"
	"github.com/farellandr/ticketservice/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if err := server.Start(cfg, appLog); err != nil {
		appLog.Fatal("Server failed to start", "error", err)
	}
}
