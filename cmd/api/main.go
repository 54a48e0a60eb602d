package main

import (
	"os"

	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
	"github.com/arifsetiawan/magangdik/internal/server"
)

// @title MagangDik API
// @version 1.0
// @description API for the education office internship and research permit portal

// @contact.name API Support
// @contact.email magang@disdik.example.id

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for admin endpoints

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
