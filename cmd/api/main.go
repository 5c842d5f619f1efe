package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/yigit/coursereg/internal/pkg/logger"
	"github.com/yigit/coursereg/internal/server"
)

// @title Course Registration API
// @version 1.0
// @description Enroll students into courses, withdraw them, and list upcoming registrations

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
