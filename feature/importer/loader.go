package importer

import (
	"roster-importer/core/mailer"
	"roster-importer/core/reconcile"
	"roster-importer/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   reconcile.Store
	service *Service
	handler *Handler
}

// NewFeature creates a new Importer feature.
func NewFeature(store reconcile.Store, client storage.Client, bucket string, sender mailer.Sender, logger *zap.Logger) *Feature {
	archiver := NewArchiver(client, bucket, logger)
	svc := NewService(store, NewXLSXReader(), archiver, sender, logger)
	h := NewHandler(svc, logger)
	return &Feature{store: store, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "importer"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
