package screens

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/hclbank/netbank/internal/gateway"
)

// AddMoney loads the deposit screen's account snapshot.
func (h *Handler) AddMoney(c *fiber.Ctx) error {
	account, err := h.bankFor(c).MyAccount(c.UserContext())
	if err != nil {
		return apiFail(err, "Failed to load account")
	}
	return c.JSON(fiber.Map{"account": account})
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AddMoneyDeposit credits the caller's account. Amounts are validated locally
// before any backend call.
func (h *Handler) AddMoneyDeposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Please enter a valid amount")
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(http.StatusBadRequest, "Please enter a valid amount")
	}

	bank := h.bankFor(c)
	ctx := c.UserContext()

	account, err := bank.MyAccount(ctx)
	if err != nil {
		return apiFail(err, "Unable to resolve your account")
	}
	if account.AccountID == 0 {
		return apiFail(gateway.ErrAccountMissing, "Unable to resolve your account")
	}

	resp, err := bank.Deposit(ctx, account.AccountID, req.Amount)
	if err != nil {
		return apiFail(err, "Deposit failed")
	}

	return c.JSON(fiber.Map{
		"accountId": resp.AccountID,
		"balance":   resp.BalanceAmount,
		"message":   "Money added successfully",
	})
}
