package console

import (
	"console-server/core/gateway"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the console service into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the console feature for the given asset root and
// resolved gateway configuration.
func NewFeature(assetRoot string, cfg gateway.Resolved, logger *zap.Logger) *Feature {
	return &Feature{
		service: NewService(NewStore(assetRoot), cfg, logger),
	}
}

func (f *Feature) Name() string {
	return "console"
}

func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the console routes. The catch-all must be loaded last
// among features since it absorbs every path.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
