// Package engine wires acquisition, bank classification and field extraction
// into the single parse-document operation the boundary layers call.
package engine

import (
	"context"
	"log/slog"

	"github.com/credlens/statement-parser/internal/extractor"
	"github.com/credlens/statement-parser/internal/models"
	"github.com/credlens/statement-parser/internal/parser"
)

// Engine runs the full statement pipeline: bytes → text → bank → fields.
type Engine struct {
	acquirer extractor.Acquirer
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithAcquirer injects a text-acquisition strategy, replacing the default
// native-plus-OCR pipeline.
func WithAcquirer(a extractor.Acquirer) Option {
	return func(e *Engine) { e.acquirer = a }
}

// WithLogger injects the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine. Without options it uses the default acquisition
// pipeline and slog.Default().
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.acquirer == nil {
		e.acquirer = extractor.NewPipeline(extractor.Config{Logger: e.logger})
	}
	return e
}

// Parse extracts structured statement fields from raw PDF bytes. It never
// panics: any uncaught failure inside the pipeline degrades to an UNKNOWN
// result with an empty field set.
func (e *Engine) Parse(ctx context.Context, data []byte) (result models.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("parse pipeline panicked", "panic", rec)
			result = models.Result{Bank: models.BankUnknown, Fields: models.NewStatementFields()}
		}
	}()

	text, err := e.acquirer.Acquire(ctx, data)
	if err != nil {
		e.logger.Warn("text acquisition failed", "error", err)
		text = ""
	}

	result = parser.DetectAndExtract(text)
	e.logger.Info("statement parsed",
		"bank", result.Bank,
		"chars", len(text),
		"transactions", len(result.Fields.Transactions))
	return result
}
