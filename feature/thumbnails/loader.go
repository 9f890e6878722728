package thumbnails

import (
	"kitinventory/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the thumbnails feature. A nil storage client disables it.
func NewFeature(client storage.Client, bucket, imageHost string, logger *zap.Logger) *Feature {
	if client == nil {
		return &Feature{}
	}
	svc := NewService(client, bucket, imageHost, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "thumbnails"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
