// Package api exposes the parsing engine over HTTP.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/credlens/statement-parser/internal/engine"
	"github.com/credlens/statement-parser/internal/models"
)

// unsupportedBankMsg is returned when the statement text matches none of the
// supported issuers.
const unsupportedBankMsg = "Only Kotak, ICICI, Axis, HDFC, and SBI Bank statements are supported."

// ParseResponse is the JSON body for a successful POST /parse.
type ParseResponse struct {
	Success bool                    `json:"success"`
	Bank    string                  `json:"bank"`
	Fields  *models.StatementFields `json:"fields"`
}

// ErrorResponse is the JSON body for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Engine *engine.Engine
	Logger *slog.Logger
}

// NewHandler creates a Handler around a parse engine.
func NewHandler(eng *engine.Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Engine: eng, Logger: logger}
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/parse", h.HandleParse)
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleParse accepts a statement PDF as the multipart form field "file" and
// returns the classified bank with its extracted fields.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse{Error: "No file uploaded. Use form field 'file'."})
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse{Error: "Only PDF files are supported."})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse{Error: fmt.Sprintf("Failed to read uploaded file: %v", err)})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse{Error: fmt.Sprintf("Failed to read uploaded file: %v", err)})
	}

	result := h.Engine.Parse(c.UserContext(), data)

	if result.Bank == models.BankUnknown {
		h.Logger.Info("rejected statement from unsupported issuer", "file", fileHeader.Filename)
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse{Error: unsupportedBankMsg})
	}

	return c.JSON(ParseResponse{
		Success: true,
		Bank:    string(result.Bank),
		Fields:  result.Fields,
	})
}
