package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "OCR_MIN_TEXT_LEN", "OCR_DPI",
		"PDFTOPPM_PATH", "TESSERACT_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 200, cfg.OCR.MinTextLen)
	assert.Equal(t, 200, cfg.OCR.DPI)
	assert.Equal(t, "pdftoppm", cfg.OCR.PdftoppmPath)
	assert.Equal(t, "tesseract", cfg.OCR.TesseractPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OCR_MIN_TEXT_LEN", "500")
	t.Setenv("OCR_DPI", "300")
	t.Setenv("PDFTOPPM_PATH", "/usr/local/bin/pdftoppm")
	t.Setenv("TESSERACT_PATH", "/usr/local/bin/tesseract")

	cfg := Load()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 500, cfg.OCR.MinTextLen)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, "/usr/local/bin/pdftoppm", cfg.OCR.PdftoppmPath)
	assert.Equal(t, "/usr/local/bin/tesseract", cfg.OCR.TesseractPath)
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("OCR_DPI", "not-a-number")
	cfg := Load()
	assert.Equal(t, 200, cfg.OCR.DPI)
}
