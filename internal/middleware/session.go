package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/session"
)

// SessionCookie names the browser cookie carrying the session id.
const SessionCookie = "netbank_session"

const (
	localsPrincipal = "principal"
	localsSessionID = "session_id"
)

// SessionRestore reconstructs the Principal for the request's session cookie
// before any guard or screen runs. A missing cookie, unknown session, or
// store failure all resolve to an absent principal; the guard then sends the
// user to login rather than ever rendering half-authenticated state.
func SessionRestore(store session.Store, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			return c.Next()
		}
		c.Locals(localsSessionID, sid)

		p, err := store.Restore(c.UserContext(), sid)
		if err != nil {
			logger.Error("session restore failed",
				slog.String("session_id", sid),
				slog.Any("error", err),
			)
			return c.Next()
		}
		if p != nil {
			c.Locals(localsPrincipal, p)
		}
		return c.Next()
	}
}

// PrincipalFrom returns the restored Principal, or nil when the request is
// unauthenticated.
func PrincipalFrom(c *fiber.Ctx) *session.Principal {
	p, _ := c.Locals(localsPrincipal).(*session.Principal)
	return p
}

// SessionIDFrom returns the request's session id, empty when no cookie was
// presented.
func SessionIDFrom(c *fiber.Ctx) string {
	sid, _ := c.Locals(localsSessionID).(string)
	return sid
}

// SetSessionCookie installs a fresh session cookie on the response.
func SetSessionCookie(c *fiber.Ctx, sessionID string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
