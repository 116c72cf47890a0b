package screens

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/guard"
	"github.com/hclbank/netbank/internal/middleware"
	"github.com/hclbank/netbank/internal/session"
)

// KycScreen is the intake form view model.
func (h *Handler) KycScreen(c *fiber.Ctx) error {
	p := middleware.PrincipalFrom(c)
	if p.KYCCompleted {
		return c.Redirect(guard.CustomerHomePath, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"screen":   "kyc",
		"username": p.Username,
	})
}

type kycRequest struct {
	Aadhaar string `json:"aadhaar"`
	Pan     string `json:"pan"`
	Dob     string `json:"dob"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r kycRequest) validate() string {
	aadhaar := strings.Join(strings.Fields(r.Aadhaar), "")
	if len(aadhaar) != 12 || !allDigits(aadhaar) {
		return "Aadhaar must be a 12 digit number"
	}
	if len(strings.TrimSpace(r.Pan)) != 10 {
		return "PAN must be 10 characters"
	}
	if strings.TrimSpace(r.Dob) == "" {
		return "Date of birth is required"
	}
	if strings.TrimSpace(r.Address) == "" {
		return "Address is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		return "Phone number is required"
	}
	return ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// KycSubmit validates the intake fields, marks KYC complete on the backend,
// and flips only the kycCompleted flag on the stored Principal.
func (h *Handler) KycSubmit(c *fiber.Ctx) error {
	var req kycRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if msg := req.validate(); msg != "" {
		return fiber.NewError(http.StatusBadRequest, msg)
	}

	if err := h.bankFor(c).SubmitKYC(c.UserContext()); err != nil {
		return apiFail(err, "KYC submission failed")
	}

	sid := middleware.SessionIDFrom(c)
	updated, err := h.sessions.Update(c.UserContext(), sid, session.Changes{
		KYCCompleted: session.Bool(true),
	})
	if err != nil || updated == nil {
		// The backend accepted the submission; a session hiccup only means
		// the flag is stale until the next login.
		return fiber.NewError(http.StatusInternalServerError, "KYC recorded but session refresh failed")
	}

	return c.JSON(fiber.Map{
		"message":      "KYC Submitted Successfully!",
		"kycCompleted": true,
		"next":         guard.CustomerHomePath,
	})
}
