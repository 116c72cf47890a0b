package screens

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/guard"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type loginResponse struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	KYCCompleted bool   `json:"kycCompleted"`
	Next         string `json:"next"`
}

// LoginScreen is the public login view model.
func (h *Handler) LoginScreen(c *fiber.Ctx) error {
	// An already authenticated visitor has no business on the login screen.
	if p := middleware.PrincipalFrom(c); p != nil {
		return c.Redirect(guard.ResolveRoot(p), fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"screen": "login", "from": c.Query("from")})
}

// SignupScreen is the public registration view model.
func (h *Handler) SignupScreen(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"screen": "signup"})
}

// Login exchanges credentials with the backend, establishes the session, and
// answers with the destination the root-resolution precedence picks.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Email and password are required")
	}

	resp, err := h.bank.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return apiFail(err, "Login failed")
	}

	p := session.Principal{
		Token:        resp.Token,
		Role:         session.Role(resp.Role),
		Username:     resp.Username,
		Email:        resp.Email,
		KYCCompleted: resp.KYCCompleted,
	}

	sid := uuid.NewString()
	if err := h.sessions.Login(c.UserContext(), sid, p); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "could not establish session")
	}
	middleware.SetSessionCookie(c, sid, h.sessionTTL)

	// Return to the originally requested page only when the user would land
	// on the dashboard anyway; role and KYC redirects take precedence.
	next := guard.ResolveRoot(&p)
	if next == guard.CustomerHomePath && req.From != "" && strings.HasPrefix(req.From, "/") {
		next = req.From
	}

	return c.JSON(loginResponse{
		Username:     p.Username,
		Email:        p.Email,
		Role:         string(p.Role),
		KYCCompleted: p.KYCCompleted,
		Next:         next,
	})
}

type registerRequest struct {
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a customer account. The user logs in afterwards; no
// session is established here.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)

	if req.UserName == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "Username and email are required")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(http.StatusBadRequest, "Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return fiber.NewError(http.StatusBadRequest, "Passwords do not match")
	}

	if err := h.bank.Register(c.UserContext(), req.UserName, req.Email, req.Password); err != nil {
		return apiFail(err, "Registration failed")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful! Please login.",
		"next":    guard.LoginPath,
	})
}

// Logout clears the persisted session record and the cookie. This is the only
// operation that ever clears the session store.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		if err := h.sessions.Logout(c.UserContext(), sid); err != nil {
			return fiber.NewError(http.StatusInternalServerError, gateway.ErrorMessage(err, "Logout failed"))
		}
	}
	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{"status": "logged_out", "next": guard.LoginPath})
}

// Root resolves a request for no specific page into the user's landing page.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.Redirect(guard.ResolveRoot(middleware.PrincipalFrom(c)), fiber.StatusSeeOther)
}
