package catalog

import (
	"errors"

	"model-portfolio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the published gallery over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the gallery routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/gallery")
	group.Get("/", h.HandleGetGallery)
	group.Get("/:id", h.HandleGetItem)
}

// HandleGetGallery returns the published gallery.
// @Summary Get Gallery
// @Description Returns the published gallery index. An unpublished gallery is an empty array.
// @Tags gallery
// @Produce json
// @Success 200 {array} catalog.Item "Gallery items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery [get]
func (h *Handler) HandleGetGallery(c *fiber.Ctx) error {
	items, err := h.service.Gallery()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read gallery", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetItem returns a single published item.
// @Summary Get Gallery Item
// @Description Returns one item of the published gallery by id.
// @Tags gallery
// @Produce json
// @Param id path string true "Item id (e.g. 'chair01')"
// @Success 200 {object} catalog.Item "Gallery item"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/{id} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.Item(c.Params("id"))
	if errors.Is(err, ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read gallery item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(item)
}
