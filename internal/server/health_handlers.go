package server

import (
	"github.com/gofiber/fiber/v2"

	"pulse/internal/seed"
)

// LivenessCheck handles GET /health/live
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck handles GET /health/ready. The server is ready once the
// store holds seeded users.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if s.store.Users.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"reason": "store not seeded",
		})
	}
	return c.JSON(fiber.Map{
		"status":      "ok",
		"collections": seed.Counts(s.store),
	})
}
