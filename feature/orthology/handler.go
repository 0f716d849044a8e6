package orthology

import (
	"errors"
	"mime/multipart"

	"orth-check/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// uploadField is the multipart field carrying mapping files, in processing order.
const uploadField = "files"

// Handler handles HTTP requests for orthology checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the orthology routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orthology")
	group.Post("/check", h.HandleCheck)
	group.Get("/runs", h.HandleRuns)
}

// HandleCheck reconciles uploaded mapping files.
// @Summary Check Orthology Mapping Files
// @Description Reconciles the uploaded files in upload order and reports gene families whose genes were mapped differently by earlier files.
// @Tags orthology
// @Accept multipart/form-data
// @Produce json,plain
// @Param files formData file true "Mapping files, in processing order"
// @Param format query string false "Response format (json or text)"
// @Success 200 {object} RunSummary "Run Summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orthology/check [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart form expected"})
	}
	headers := form.File[uploadField]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "at least one mapping file is required"})
	}

	files := make([]NamedReader, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			l.Error("Failed to open upload", zap.String("file", fh.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open " + fh.Filename})
		}
		defer func(f multipart.File) { _ = f.Close() }(f)
		files = append(files, NamedReader{Name: fh.Filename, Reader: f})
	}

	l.Info("Reconciling uploaded mapping files", zap.Int("files", len(files)))
	summary, err := h.service.RunReaders(c.Context(), SourceHTTP, files, nil)
	if err != nil {
		l.Error("Orthology check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Send(RenderReports(summary.Reports))
	}
	return c.JSON(summary)
}

// HandleRuns lists archived runs.
// @Summary List Runs
// @Description Lists the most recent reconciliation runs with per-file counts.
// @Tags orthology
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} RunRecord "Runs"
// @Failure 503 {object} map[string]string "History Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orthology/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", h.service.cfg.HistoryLimit)
	if limit <= 0 {
		limit = 20
	}

	runs, err := h.service.History().Recent(c.Context(), limit)
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}
