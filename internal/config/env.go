package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted for command-line defaults.
const (
	EnvDBPath     = "DRAGON_DB"
	EnvConfigPath = "DRAGON_CONFIG"
	EnvLogPath    = "DRAGON_LOG"
)

// LoadEnv loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load %s: %w", path, err)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
