package extractor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// OCROptions configures the rasterize-and-recognize path.
type OCROptions struct {
	DPI           int
	PdftoppmPath  string
	TesseractPath string
	Logger        *slog.Logger
}

// ExtractTextOCR rasterizes each PDF page and runs Tesseract over the images,
// concatenating all page results. A page whose OCR fails contributes nothing;
// the remaining pages continue. Requires pdftoppm (poppler-utils) and
// tesseract on the configured paths.
func ExtractTextOCR(ctx context.Context, data []byte, opts OCROptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := exec.LookPath(opts.PdftoppmPath); err != nil {
		return "", fmt.Errorf("pdftoppm not available (install poppler-utils): %w", err)
	}
	if _, err := exec.LookPath(opts.TesseractPath); err != nil {
		return "", fmt.Errorf("tesseract not available (install tesseract-ocr): %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "ocr-pages-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	// Page count via pdfcpu, for the sanity check against what pdftoppm
	// actually produced.
	expectedPages := pageCount(data)

	imgPrefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, opts.PdftoppmPath, "-r", fmt.Sprintf("%d", opts.DPI), "-png", pdfPath, imgPrefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(out))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("read temp dir: %w", err)
	}

	var imageFiles []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			imageFiles = append(imageFiles, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(imageFiles)

	if len(imageFiles) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images")
	}
	if expectedPages > 0 && len(imageFiles) != expectedPages {
		logger.Warn("rasterized page count differs from document page count",
			"rasterized", len(imageFiles), "expected", expectedPages)
	}

	var pages []string
	for _, imgFile := range imageFiles {
		outBase := strings.TrimSuffix(imgFile, ".png") + "-ocr"
		cmd := exec.CommandContext(ctx, opts.TesseractPath, imgFile, outBase, "-l", "eng")
		if out, err := cmd.CombinedOutput(); err != nil {
			logger.Warn("tesseract failed for page image", "image", imgFile, "error", err, "output", string(out))
			continue
		}

		textBytes, err := os.ReadFile(outBase + ".txt")
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(textBytes)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("tesseract produced no text from %d page images", len(imageFiles))
	}

	return strings.Join(pages, "\n"), nil
}

// pageCount returns the document's page count via pdfcpu, 0 when the
// document cannot be read.
func pageCount(data []byte) int {
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0
	}
	return pdfCtx.PageCount
}
