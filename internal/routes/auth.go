package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/screens"
)

// RegisterAuthRoutes wires the public screens and the authentication
// endpoints.
func RegisterAuthRoutes(app *fiber.App, h *screens.Handler, rateLimiter fiber.Handler) {
	app.Get("/login", h.LoginScreen)
	app.Get("/signup", h.SignupScreen)

	group := app.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/register", h.Register)
	group.Post("/logout", h.Logout)
}
