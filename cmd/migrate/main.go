package main

import (
	"hotel_booking/internal/config" // Custom import path (Config)
	"hotel_booking/internal/db"     // Custom import path (Database)
	"hotel_booking/internal/utils"  // Logger setup

	"github.com/sirupsen/logrus" // Structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	utils.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
}
