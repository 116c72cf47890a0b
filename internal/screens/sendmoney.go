package screens

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/middleware"
)

const suggestedContactLimit = 16

type sendMoneyView struct {
	Account   *gateway.Account         `json:"account,omitempty"`
	Suggested []gateway.SearchableUser `json:"suggested"`
	MyUpiID   string                   `json:"myUpiId"`
	Error     string                   `json:"error,omitempty"`
}

// SendMoney loads the transfer screen: the caller's account and a capped list
// of suggested contacts with the caller's own identity filtered out. Fetch
// failures leave the screen usable with an inline notice.
func (h *Handler) SendMoney(c *fiber.Ctx) error {
	p := middleware.PrincipalFrom(c)
	bank := h.bankFor(c)
	ctx := c.UserContext()

	view := sendMoneyView{
		Suggested: []gateway.SearchableUser{},
		MyUpiID:   DeriveUPI(p.Username),
	}

	account, accErr := bank.MyAccount(ctx)
	if accErr == nil && account.AccountID != 0 {
		view.Account = &account
	}

	users, usersErr := bank.AllSearchable(ctx)
	if usersErr == nil {
		for _, u := range users {
			if u.UpiID == view.MyUpiID {
				continue
			}
			view.Suggested = append(view.Suggested, u)
			if len(view.Suggested) == suggestedContactLimit {
				break
			}
		}
	}

	if accErr != nil || usersErr != nil {
		err := accErr
		if err == nil {
			err = usersErr
		}
		view.Error = gateway.ErrorMessage(err, "Unable to load suggested contacts")
	}

	return c.JSON(view)
}

type searchRequest struct {
	UpiID string `json:"upiId"`
}

// SendMoneySearch resolves a payee by exact UPI identifier. Self-transfer is
// rejected before any backend call.
func (h *Handler) SendMoneySearch(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	upiID := strings.ToLower(strings.TrimSpace(req.UpiID))

	if !strings.Contains(upiID, "@") {
		return fiber.NewError(http.StatusBadRequest, "Please enter a valid UPI ID")
	}
	p := middleware.PrincipalFrom(c)
	if strings.EqualFold(upiID, DeriveUPI(p.Username)) {
		return fiber.NewError(http.StatusBadRequest, "You cannot transfer to your own UPI ID")
	}

	receiver, err := h.bankFor(c).SearchByUPI(c.UserContext(), upiID)
	if err != nil {
		return apiFail(err, "User not found")
	}
	return c.JSON(receiver)
}

type transferRequest struct {
	TargetAccountID int64           `json:"targetAccountId"`
	TargetUpiID     string          `json:"targetUpiId"`
	Amount          decimal.Decimal `json:"amount"`
	Confirm         bool            `json:"confirm"`
}

// SendMoneyTransfer executes a confirmed transfer. The balance and
// self-transfer checks here are advisory fast-fails; the backend re-validates
// and remains the authority.
func (h *Handler) SendMoneyTransfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Please enter a valid amount")
	}

	if !req.Confirm {
		return fiber.NewError(http.StatusBadRequest, "Transfer requires explicit confirmation")
	}
	if req.TargetAccountID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "Receiver account details are missing")
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(http.StatusBadRequest, "Please enter a valid amount")
	}

	p := middleware.PrincipalFrom(c)
	if req.TargetUpiID != "" && strings.EqualFold(strings.TrimSpace(req.TargetUpiID), DeriveUPI(p.Username)) {
		return fiber.NewError(http.StatusBadRequest, "You cannot transfer to your own UPI ID")
	}

	bank := h.bankFor(c)
	ctx := c.UserContext()

	account, err := bank.MyAccount(ctx)
	if err != nil {
		return apiFail(err, "Unable to resolve your source account")
	}
	if account.AccountID == 0 {
		return apiFail(gateway.ErrAccountMissing, "Unable to resolve your source account")
	}
	if account.AccountID == req.TargetAccountID {
		return fiber.NewError(http.StatusBadRequest, "You cannot transfer to your own account")
	}
	if account.Balance.IsPositive() && req.Amount.GreaterThan(account.Balance) {
		return fiber.NewError(http.StatusBadRequest, "Insufficient balance")
	}

	if err := bank.Transfer(ctx, account.AccountID, req.TargetAccountID, req.Amount); err != nil {
		return apiFail(err, "Transfer failed")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Transfer successful",
	})
}
