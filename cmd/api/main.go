package main

import (
	"os"

	"github.com/davidrv/permanencia/internal/pkg/logger"
	"github.com/davidrv/permanencia/internal/server"
)

// @title Permanencia API
// @version 1.0
// @description API para la gestión del programa de permanencia estudiantil universitaria
// @termsOfService http://swagger.io/terms/

// @contact.name Equipo Permanencia
// @contact.email permanencia@universidad.edu.co

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

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
