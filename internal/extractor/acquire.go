// Package extractor turns raw PDF bytes into linearized statement text.
//
// Acquisition is a two-candidate race: direct text extraction first, and an
// OCR pass over rasterized pages when the native yield looks too small to be
// a real statement. Whichever candidate is longer wins, with ties going to
// the native text. The pipeline never returns an error for unusable input —
// total failure is the empty string, which the router downstream classifies
// as UNKNOWN.
package extractor

import (
	"context"
	"log/slog"
)

// DefaultOCRMinTextLen is the native-text length below which the OCR
// fallback is attempted.
const DefaultOCRMinTextLen = 200

// DefaultOCRDPI is the rasterization resolution for the OCR path.
const DefaultOCRDPI = 200

// Acquirer is the injected text-acquisition strategy. Implementations must
// not panic and should prefer returning "" over an error for unreadable
// input; an error is reserved for environmental problems worth logging.
type Acquirer interface {
	Acquire(ctx context.Context, data []byte) (string, error)
}

// Config configures the acquisition pipeline.
type Config struct {
	// OCRMinTextLen is the native-extraction character count under which
	// the OCR path runs (default 200).
	OCRMinTextLen int

	// OCRDPI is the pdftoppm rasterization resolution (default 200).
	OCRDPI int

	// PdftoppmPath and TesseractPath override the binaries resolved from
	// PATH. Paths are injected here rather than read from process globals.
	PdftoppmPath  string
	TesseractPath string

	// Logger for debug/error messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.OCRMinTextLen <= 0 {
		c.OCRMinTextLen = DefaultOCRMinTextLen
	}
	if c.OCRDPI <= 0 {
		c.OCRDPI = DefaultOCRDPI
	}
	if c.PdftoppmPath == "" {
		c.PdftoppmPath = "pdftoppm"
	}
	if c.TesseractPath == "" {
		c.TesseractPath = "tesseract"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Pipeline is the default Acquirer: native PDF text with OCR fallback.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// NewPipeline creates a Pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg, logger: cfg.Logger}
}

// Acquire extracts text from PDF bytes. It never returns an error: every
// failure mode degrades to a shorter (possibly empty) candidate.
func (p *Pipeline) Acquire(ctx context.Context, data []byte) (string, error) {
	native := ExtractText(data)

	if len(native) >= p.cfg.OCRMinTextLen {
		return native, nil
	}

	p.logger.Debug("native text below threshold, attempting OCR",
		"native_chars", len(native), "threshold", p.cfg.OCRMinTextLen)

	ocr := p.ocrText(ctx, data)

	if len(ocr) > len(native) {
		p.logger.Debug("using OCR text", "ocr_chars", len(ocr))
	}
	return pickLonger(native, ocr), nil
}

// pickLonger selects between the two candidate texts. The longer one wins;
// ties favor the native result.
func pickLonger(native, ocr string) string {
	if len(ocr) > len(native) {
		return ocr
	}
	return native
}

func (p *Pipeline) ocrText(ctx context.Context, data []byte) string {
	text, err := ExtractTextOCR(ctx, data, OCROptions{
		DPI:           p.cfg.OCRDPI,
		PdftoppmPath:  p.cfg.PdftoppmPath,
		TesseractPath: p.cfg.TesseractPath,
		Logger:        p.logger,
	})
	if err != nil {
		p.logger.Warn("OCR fallback failed", "error", err)
		return ""
	}
	return text
}
