package main

import (
	"os"

	"github.com/yigit/sectiontrack/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/sectiontrack/internal/server"
)

// @title SectionTrack API
// @version 1.0
// @description Sections, rosters and attendance for a mentored course program

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited gracefully")
}
