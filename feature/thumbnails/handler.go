package thumbnails

import (
	"strings"

	"kitinventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for thumbnails.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the thumbnail routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/thumbnail/*", h.HandleGetThumbnail)
}

// HandleGetThumbnail serves a thumbnail image from the mirror bucket.
// @Summary Get Thumbnail
// @Description Serves a kit or part thumbnail, mirroring it from the catalog on first access.
// @Tags thumbnails
// @Produce png
// @Param name path string true "Image object name"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} map[string]string "Image not found"
// @Router /thumbnail/{name} [get]
func (h *Handler) HandleGetThumbnail(c *fiber.Ctx) error {
	name := strings.TrimPrefix(c.Params("*"), "/")
	if name == "" || strings.Contains(name, "..") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid image name",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.Get(c.Context(), name)
	if err != nil {
		l.Warn("Thumbnail lookup failed", zap.String("object", name), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "image not found",
		})
	}

	c.Set(fiber.HeaderContentType, imageContentType(name))
	return c.Send(data)
}

func imageContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(name, ".gif"):
		return "image/gif"
	case strings.HasSuffix(name, ".webp"):
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
