package main

import (
	"os"

	"github.com/okanck/studentapi/internal/pkg/logger"
	"github.com/okanck/studentapi/internal/server"
)

// @title Student Records API
// @version 1.0
// @description Minimal student-records CRUD API with JWT bearer authentication

// @host localhost:8080
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
