package console

import (
	"errors"

	"console-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the console bundle.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all console route. All methods are
// accepted and treated the same.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/*", h.HandleRequest)
}

// HandleRequest classifies the (percent-decoded) request path and serves
// either the injected entry document or a raw asset, falling back to the
// entry document for client-side routes.
func (h *Handler) HandleRequest(c *fiber.Ctx) error {
	reqPath := c.Path()

	if reqPath == "/" || reqPath == "/"+EntryDocument {
		return h.serveEntry(c)
	}

	data, err := h.service.Asset(reqPath)
	if errors.Is(err, ErrNotFound) {
		// SPA fallback: let the console's client-side router handle it.
		return h.serveEntry(c)
	}

	c.Set(fiber.HeaderContentType, contentTypeFor(reqPath))
	return c.Send(data)
}

// serveEntry responds with the injected entry document. A read failure
// here means the asset bundle is missing, which is the one per-request
// fatal case.
func (h *Handler) serveEntry(c *fiber.Ctx) error {
	doc, err := h.service.Entry()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Entry document unavailable", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "entry document unavailable")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(doc)
}
