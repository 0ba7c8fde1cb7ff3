package console

import (
	"testing"

	"console-server/core/gateway"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	feature := NewFeature(t.TempDir(), gateway.Resolved{}, zap.NewNop())

	assert.Equal(t, "console", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
