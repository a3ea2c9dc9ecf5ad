// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type OCRConfig struct {
	// MinTextLen is the native-extraction character count under which the
	// OCR fallback runs.
	MinTextLen int

	// DPI is the rasterization resolution for the OCR path.
	DPI int

	// PdftoppmPath and TesseractPath locate the OCR binaries. Defaults rely
	// on PATH lookup.
	PdftoppmPath  string
	TesseractPath string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		OCR: OCRConfig{
			MinTextLen:    getEnvAsInt("OCR_MIN_TEXT_LEN", 200),
			DPI:           getEnvAsInt("OCR_DPI", 200),
			PdftoppmPath:  getEnv("PDFTOPPM_PATH", "pdftoppm"),
			TesseractPath: getEnv("TESSERACT_PATH", "tesseract"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
