// Package auth protects endpoints with a static API key.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds the settings for the auth middleware.
type Config struct {
	// ApiKey is the expected key. When empty, all requests pass.
	ApiKey string
	// Header is the request header carrying the key. Defaults to X-Api-Key.
	Header string
}

// New returns a middleware that rejects requests without the configured API key.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = "X-Api-Key"
	}
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		given := c.Get(header)
		if subtle.ConstantTimeCompare([]byte(given), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
