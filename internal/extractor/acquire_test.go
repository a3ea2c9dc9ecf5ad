package extractor

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.defaults()

	if cfg.OCRMinTextLen != DefaultOCRMinTextLen {
		t.Errorf("OCRMinTextLen: got %d, want %d", cfg.OCRMinTextLen, DefaultOCRMinTextLen)
	}
	if cfg.OCRDPI != DefaultOCRDPI {
		t.Errorf("OCRDPI: got %d, want %d", cfg.OCRDPI, DefaultOCRDPI)
	}
	if cfg.PdftoppmPath != "pdftoppm" {
		t.Errorf("PdftoppmPath: got %q, want %q", cfg.PdftoppmPath, "pdftoppm")
	}
	if cfg.TesseractPath != "tesseract" {
		t.Errorf("TesseractPath: got %q, want %q", cfg.TesseractPath, "tesseract")
	}
	if cfg.Logger == nil {
		t.Error("Logger must default to non-nil")
	}
}

func TestConfigDefaultsKeepOverrides(t *testing.T) {
	cfg := Config{OCRMinTextLen: 50, OCRDPI: 300, PdftoppmPath: "/opt/pdftoppm"}
	cfg.defaults()

	if cfg.OCRMinTextLen != 50 || cfg.OCRDPI != 300 || cfg.PdftoppmPath != "/opt/pdftoppm" {
		t.Errorf("overrides were clobbered: %+v", cfg)
	}
}

func TestExtractTextGarbageInput(t *testing.T) {
	// Not a PDF at all: extraction degrades to "" without panicking.
	if got := ExtractText([]byte("definitely not a pdf")); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := ExtractText(nil); got != "" {
		t.Errorf("nil input: got %q, want empty", got)
	}
}

func TestExtractTextOCRMissingBinaries(t *testing.T) {
	_, err := ExtractTextOCR(context.Background(), []byte("%PDF-1.4"), OCROptions{
		DPI:           200,
		PdftoppmPath:  "pdftoppm-binary-that-does-not-exist",
		TesseractPath: "tesseract-binary-that-does-not-exist",
		Logger:        discardLogger(),
	})
	if err == nil {
		t.Fatal("expected error for missing binaries")
	}
}

func TestPickLonger(t *testing.T) {
	tests := []struct {
		name     string
		native   string
		ocr      string
		expected string
	}{
		{"ocr strictly longer wins", "short", "much longer ocr text", "much longer ocr text"},
		{"native longer wins", "the native extraction", "ocr", "the native extraction"},
		{"tie favors native", "aaaa", "bbbb", "aaaa"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickLonger(tt.native, tt.ocr); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPipelineAcquireNeverErrors(t *testing.T) {
	p := NewPipeline(Config{
		PdftoppmPath:  "pdftoppm-binary-that-does-not-exist",
		TesseractPath: "tesseract-binary-that-does-not-exist",
		Logger:        discardLogger(),
	})

	text, err := p.Acquire(context.Background(), []byte("garbage bytes"))
	if err != nil {
		t.Fatalf("Acquire must not error, got: %v", err)
	}
	if text != "" {
		t.Errorf("got %q, want empty text for unreadable input", text)
	}
}
