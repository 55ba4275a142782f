package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable that overrides the .env file location.
const EnvFileVar = EnvPrefix + "_ENV_FILE"

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error. Existing variables are never overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// LoadConfig loads configuration from a .env file (optional) and environment
// variables. When envPath is empty, GRAPHRAG_ENV_FILE and then ".env" are
// tried.
func LoadConfig(envPath string) (AppConfig, error) {
	if envPath == "" {
		envPath = os.Getenv(EnvFileVar)
	}
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, fmt.Errorf("load env file: %w", err)
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}

	envCfg = envCfg.Normalize()
	if err := envCfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return envCfg.ToAppConfig(), nil
}
