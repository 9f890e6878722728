package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service    *Service
	controller *Controller
	handler    *Handler
}

// NewFeature creates the inventory feature. The fetcher passed here drives
// part collection loading and may be the raw catalog fetcher or a caching
// wrapper around it.
func NewFeature(service *Service, fetcher PartsFetcher, logger *zap.Logger) *Feature {
	ctrl := NewController(service, fetcher, logger)
	h := NewHandler(service, ctrl)
	return &Feature{service: service, controller: ctrl, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
