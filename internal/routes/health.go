package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterHealthRoutes adds a liveness endpoint covering the session backend.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		sessionStatus := "ok"

		if d.Cache != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				sessionStatus = err.Error()
			}
		} else {
			sessionStatus = "in-memory"
		}

		status := http.StatusOK
		if sessionStatus != "ok" && sessionStatus != "in-memory" {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    fiber.Map{"sessions": sessionStatus},
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
