package main

import (
	"os"

	"github.com/krmu/admissions/internal/pkg/logger"
	"github.com/krmu/admissions/internal/server"
)

// @title KRMU Admissions API
// @version 1.0
// @description Admissions management backend for staff accounts and student applicants

// @host localhost:5000
// @BasePath /api

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

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
