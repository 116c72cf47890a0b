package screens

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/gateway"
	"github.com/hclbank/netbank/internal/middleware"
)

const recentTransactionLimit = 5

type dashboardView struct {
	Account      gateway.Account        `json:"account"`
	Identity     gateway.SearchableUser `json:"identity"`
	Transactions []gateway.Transaction  `json:"recentTransactions"`
}

// Dashboard assembles the customer landing page: account snapshot, display
// identity, and the most recent transactions. Only the account fetch is
// fatal; the identity lookup degrades to the locally derived UPI and a
// failed history fetch leaves the list empty.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	p := middleware.PrincipalFrom(c)
	bank := h.bankFor(c)
	ctx := c.UserContext()

	account, err := bank.MyAccount(ctx)
	if err != nil {
		return apiFail(err, "Unable to load account data.")
	}
	if account.AccountID == 0 {
		return apiFail(gateway.ErrAccountMissing, "Unable to load account data.")
	}

	view := dashboardView{
		Account:      account,
		Identity:     h.resolveIdentity(c, account.AccountID),
		Transactions: []gateway.Transaction{},
	}

	if txs, err := bank.History(ctx, account.AccountID); err == nil {
		if len(txs) > recentTransactionLimit {
			txs = txs[:recentTransactionLimit]
		}
		view.Transactions = txs
	} else {
		h.logger.Debug("recent transactions unavailable",
			slog.String("username", p.Username),
			slog.Any("error", err),
		)
	}

	return c.JSON(view)
}

// resolveIdentity finds the principal's searchable identity by UPI match,
// degrading silently to the locally derived value when the lookup fails or
// finds nothing.
func (h *Handler) resolveIdentity(c *fiber.Ctx, accountID int64) gateway.SearchableUser {
	p := middleware.PrincipalFrom(c)
	fallback := gateway.SearchableUser{
		Name:      p.Username,
		UpiID:     DeriveUPI(p.Username),
		BankName:  bankName,
		AccountID: accountID,
	}

	users, err := h.bankFor(c).AllSearchable(c.UserContext())
	if err != nil {
		h.logger.Debug("identity resolution degraded to derived UPI",
			slog.String("username", p.Username),
			slog.Any("error", err),
		)
		return fallback
	}
	for _, u := range users {
		if u.UpiID == fallback.UpiID {
			return u
		}
	}
	return fallback
}
