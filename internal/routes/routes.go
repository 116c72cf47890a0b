package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/hclbank/netbank/internal/config"
	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/screens"
	"github.com/hclbank/netbank/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg      config.Config
	Cache    *redis.Client
	Sessions session.Store
	Bank     *gateway.Client
	Logger   *slog.Logger
}

// Setup configures middlewares and all application routes. Every protected
// screen sits behind the session restore and its guard requirement.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(middleware.SessionRestore(d.Sessions, d.Logger))

	RegisterHealthRoutes(app, d)

	h := screens.NewHandler(d.Bank, d.Sessions, d.Cfg.SessionTTL, d.Logger)

	RegisterAuthRoutes(app, h, middleware.LoginRateLimit(d.Cache, 5))
	RegisterCustomerRoutes(app, h)
	RegisterAdminRoutes(app, h)

	// Root and any unknown path resolve to the user's landing page.
	app.Get("/", h.Root)
	app.Use(h.Root)

	return nil
}
