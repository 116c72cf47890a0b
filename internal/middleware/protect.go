package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/guard"
)

// Protect enforces a route's access requirement. Allowed requests continue to
// the screen handler; everything else becomes a 303 redirect to the guard's
// target. The login redirect carries the originally requested path so the
// user lands back where they were headed.
func Protect(req guard.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := guard.Decide(PrincipalFrom(c), c.Path(), req)
		switch d.Kind {
		case guard.Allow:
			return c.Next()
		case guard.RedirectLogin:
			target := d.Target
			if d.From != "" && d.From != "/" {
				target += "?from=" + url.QueryEscape(d.From)
			}
			return c.Redirect(target, fiber.StatusSeeOther)
		default:
			return c.Redirect(d.Target, fiber.StatusSeeOther)
		}
	}
}
