package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID on requests and responses.
const Header = "X-Ray-ID"

// LocalsKey is where the ray ID is stored on the request context.
const LocalsKey = "ray_id"

// New returns middleware that tags every request with a ray ID. An ID
// supplied by the client is kept so traces can span callers; otherwise a
// fresh UUID is generated. The ID is echoed in the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
