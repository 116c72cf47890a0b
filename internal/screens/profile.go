package screens

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/middleware"
)

type profileView struct {
	Username     string                 `json:"username"`
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	KYCCompleted bool                   `json:"kycCompleted"`
	Identity     gateway.SearchableUser `json:"identity"`
	Account      *gateway.Account       `json:"account,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// Profile shows the session identity alongside the account snapshot. The
// account fetch failing degrades to an inline notice; the UPI resolution
// degrades silently to the derived value.
func (h *Handler) Profile(c *fiber.Ctx) error {
	p := middleware.PrincipalFrom(c)

	view := profileView{
		Username:     p.Username,
		Email:        p.Email,
		Role:         string(p.Role),
		KYCCompleted: p.KYCCompleted,
	}

	account, err := h.bankFor(c).MyAccount(c.UserContext())
	if err != nil {
		view.Error = gateway.ErrorMessage(err, "Failed to load profile")
		view.Identity = gateway.SearchableUser{
			Name:     p.Username,
			UpiID:    DeriveUPI(p.Username),
			BankName: bankName,
		}
		return c.JSON(view)
	}

	view.Account = &account
	view.Identity = h.resolveIdentity(c, account.AccountID)
	return c.JSON(view)
}
