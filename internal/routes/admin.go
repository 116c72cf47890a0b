package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/guard"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/screens"
	"github.com/hclbank/netbank/internal/session"
)

// RegisterAdminRoutes wires the admin console behind the ADMIN requirement.
func RegisterAdminRoutes(app *fiber.App, h *screens.Handler) {
	admin := middleware.Protect(guard.Requirement{Role: session.RoleAdmin})

	app.Get("/admin/dashboard", admin, h.AdminDashboard)
	app.Get("/admin/users", admin, h.AdminDashboard)
	app.Put("/admin/users/:id/kyc", admin, h.AdminSetKYC)
}
