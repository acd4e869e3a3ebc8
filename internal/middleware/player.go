package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureClientID stores a client id in c.Locals("clientID"). It is taken
// from the X-Client-ID header or the clientId query parameter, and a fresh
// uuid is assigned when neither is present.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Set("X-Client-ID", clientID)
		c.Locals("clientID", clientID)
		return c.Next()
	}
}
