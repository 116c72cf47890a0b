package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/guard"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/screens"
	"github.com/hclbank/netbank/internal/session"
)

// RegisterCustomerRoutes wires every customer screen behind its guard
// requirement. The KYC intake is the one screen an unverified customer may
// open.
func RegisterCustomerRoutes(app *fiber.App, h *screens.Handler) {
	customer := middleware.Protect(guard.Requirement{Role: session.RoleCustomer})
	kycIntake := middleware.Protect(guard.Requirement{Role: session.RoleCustomer, KYCExempt: true})

	app.Get("/kyc", kycIntake, h.KycScreen)
	app.Post("/kyc", kycIntake, h.KycSubmit)

	app.Get("/dashboard", customer, h.Dashboard)

	app.Get("/send-money", customer, h.SendMoney)
	app.Post("/send-money/search", customer, h.SendMoneySearch)
	app.Post("/send-money/transfer", customer, h.SendMoneyTransfer)

	app.Get("/add-money", customer, h.AddMoney)
	app.Post("/add-money", customer, h.AddMoneyDeposit)

	app.Get("/history", customer, h.History)
	app.Get("/history/export", customer, h.HistoryExport)

	app.Get("/profile", customer, h.Profile)
}
