package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/credlens/statement-parser/internal/api"
	"github.com/credlens/statement-parser/internal/config"
	"github.com/credlens/statement-parser/internal/engine"
	"github.com/credlens/statement-parser/internal/extractor"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the statement parsing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			eng := engine.New(
				engine.WithLogger(logger),
				engine.WithAcquirer(extractor.NewPipeline(extractor.Config{
					OCRMinTextLen: cfg.OCR.MinTextLen,
					OCRDPI:        cfg.OCR.DPI,
					PdftoppmPath:  cfg.OCR.PdftoppmPath,
					TesseractPath: cfg.OCR.TesseractPath,
					Logger:        logger,
				})),
			)

			app := fiber.New(fiber.Config{
				AppName:   "statement-parser",
				BodyLimit: 32 << 20,
			})
			app.Use(recover.New())

			api.NewHandler(eng, logger).RegisterRoutes(app)

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			logger.Info("starting HTTP server", "addr", addr)
			return app.Listen(addr)
		},
	}
}
