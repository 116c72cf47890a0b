package screens

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/gateway"
)

// Transaction filter values accepted by the history screen.
const (
	FilterAll    = "ALL"
	FilterDebit  = "DEBIT"
	FilterCredit = "CREDIT"
)

const csvHeader = "date,otherParty,type,amount,status"

type historyView struct {
	Transactions []gateway.Transaction `json:"transactions"`
	Total        int                   `json:"total"`
	Filter       string                `json:"filter"`
	Query        string                `json:"query"`
}

// History fetches the full transaction list and applies the type filter and
// counterparty search locally, the way the old client did over its fetched
// copy.
func (h *Handler) History(c *fiber.Ctx) error {
	txs, err := h.fetchHistory(c)
	if err != nil {
		return err
	}

	filter, query := historyParams(c)
	filtered := FilterTransactions(txs, filter, query)

	return c.JSON(historyView{
		Transactions: filtered,
		Total:        len(txs),
		Filter:       filter,
		Query:        query,
	})
}

// HistoryExport serializes the currently filtered set, not the full history,
// as CSV.
func (h *Handler) HistoryExport(c *fiber.Ctx) error {
	txs, err := h.fetchHistory(c)
	if err != nil {
		return err
	}

	filter, query := historyParams(c)
	filtered := FilterTransactions(txs, filter, query)
	if len(filtered) == 0 {
		return fiber.NewError(http.StatusBadRequest, "No transactions to export")
	}

	payload, err := MarshalTransactionsCSV(filtered)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(payload)
}

func (h *Handler) fetchHistory(c *fiber.Ctx) ([]gateway.Transaction, error) {
	bank := h.bankFor(c)
	ctx := c.UserContext()

	account, err := bank.MyAccount(ctx)
	if err != nil {
		return nil, apiFail(err, "Failed to load transactions")
	}
	if account.AccountID == 0 {
		return nil, apiFail(gateway.ErrAccountMissing, "Failed to load transactions")
	}

	txs, err := bank.History(ctx, account.AccountID)
	if err != nil {
		return nil, apiFail(err, "Failed to load transactions")
	}
	return txs, nil
}

func historyParams(c *fiber.Ctx) (filter, query string) {
	filter = strings.ToUpper(c.Query("type", FilterAll))
	if filter != FilterDebit && filter != FilterCredit {
		filter = FilterAll
	}
	return filter, c.Query("q")
}

// FilterTransactions applies the type filter and the case-insensitive
// substring search over the counterparty name.
func FilterTransactions(txs []gateway.Transaction, filter, query string) []gateway.Transaction {
	result := make([]gateway.Transaction, 0, len(txs))
	term := strings.ToLower(strings.TrimSpace(query))
	for _, tx := range txs {
		if filter != FilterAll && tx.Type != filter {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(tx.OtherParty), term) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// MarshalTransactionsCSV writes transactions as CSV with RFC3339 dates.
func MarshalTransactionsCSV(txs []gateway.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(strings.Split(csvHeader, ",")); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		record := []string{
			tx.Date.Format(time.RFC3339),
			tx.OtherParty,
			tx.Type,
			tx.Amount.String(),
			tx.Status,
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
