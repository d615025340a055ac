package integrity

import (
	"errors"

	"model-portfolio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
}

// HandleIntegrityCheck verifies the published gallery against the site files.
// @Summary Verify Gallery
// @Description Checks that every thumbnail (and with images=true every image) of the published gallery exists and is an image.
// @Tags integrity
// @Produce json
// @Param images query boolean false "Check images too"
// @Success 200 {object} integrity.Report "Verification Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	withImages := c.Query("images") == "true"

	report, err := h.service.Verify(c.Context(), withImages)
	if err != nil {
		l.Error("Gallery check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleBucketCheck verifies the published copy of the site in object storage.
// @Summary Check Bucket
// @Description Checks that the gallery and asset tree are published to the storage bucket and that the published gallery is current.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage Not Configured"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckBucket(c.Context())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.Missing) > 0 || report.Stale {
		l.Warn("Published site is incomplete", zap.Strings("missing", report.Missing), zap.Bool("stale", report.Stale))
	}
	return c.JSON(report)
}
