// Package initializers holds the one-time startup hooks run before the
// server is wired together.
package initializers

import (
	"github.com/joho/godotenv"

	"socialnet/logger"
)

// LoadEnv loads a local .env file into the process environment. Absence is
// fine in deployed environments where variables come from the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.L().Debug().Msg("no .env file found, using process environment")
	}
}
