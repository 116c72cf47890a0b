// Package screens holds one handler per business page. Each screen composes
// banking API calls into a view model; navigation outcomes are redirects and
// everything else is JSON. Screens share no logic beyond the session store
// and the guard in front of them.
package screens

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/session"
)

const bankName = "HCL Bank"

// Handler carries the dependencies every screen needs.
type Handler struct {
	bank       *gateway.Client
	sessions   session.Store
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewHandler wires the screen handlers.
func NewHandler(bank *gateway.Client, sessions session.Store, sessionTTL time.Duration, logger *slog.Logger) *Handler {
	return &Handler{bank: bank, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

// bankFor returns the API client bound to the request's session credential.
func (h *Handler) bankFor(c *fiber.Ctx) *gateway.Client {
	if p := middleware.PrincipalFrom(c); p != nil {
		return h.bank.WithToken(p.Token)
	}
	return h.bank
}

// apiFail turns a banking API failure into the error the screen surfaces:
// the backend's status when it answered, 502 for transport failures, always
// with the normalized message.
func apiFail(err error, fallback string) *fiber.Error {
	status := http.StatusBadGateway
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	return fiber.NewError(status, gateway.ErrorMessage(err, fallback))
}

// DeriveUPI builds a user's UPI identifier the way the bank provisions them:
// username with all whitespace stripped, lowercased, under the @hcl handle.
func DeriveUPI(username string) string {
	return strings.ToLower(strings.Join(strings.Fields(username), "")) + "@hcl"
}
