package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/kelsos/oklink-go/internal/logger"
)

// dotEnvFiles lists the .env files read by Load: the working directory first,
// then the directory of the executable
func dotEnvFiles() []string {
	files := []string{".env"}

	execPath, err := os.Executable()
	if err != nil {
		logger.Debug("Could not determine executable path: %v", err)
		return files
	}
	return append(files, filepath.Join(filepath.Dir(execPath), ".env"))
}

// loadDotEnv copies variables from each file that exists into the
// environment. Variables already set are never overridden, so the earlier
// file wins.
func loadDotEnv(files ...string) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			logger.Debug("Skipping %s: %v", file, err)
			continue
		}
		logger.Debug("Loaded environment from %s", file)
	}
}
