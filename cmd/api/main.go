package main

import (
	"os"

	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/server"
)

// @title SchoolHub API
// @version 1.0
// @description School management API for admins, teachers and students

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are logged in detail by the bootstrap functions.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
