package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The banking API speaks plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Timestamp unmarshals the API's date fields, which arrive either as RFC3339
// or as a zone-less LocalDateTime string.
type Timestamp struct {
	time.Time
}

const localDateTimeLayout = "2006-01-02T15:04:05"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(localDateTimeLayout, raw)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// AuthResponse is the login/register exchange result.
type AuthResponse struct {
	Token        string `json:"token"`
	Role         string `json:"role"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	KYCCompleted bool   `json:"kycCompleted"`
	Message      string `json:"message,omitempty"`
}

// Account is the caller's account snapshot.
type Account struct {
	AccountID   int64           `json:"accountId"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// Transaction is one row of an account's history.
type Transaction struct {
	Date       Timestamp       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"` // DEBIT or CREDIT
	OtherParty string          `json:"otherParty"`
	Status     string          `json:"status"`
}

// SearchableUser is a payee identity resolvable by UPI id.
type SearchableUser struct {
	Name      string `json:"name"`
	UpiID     string `json:"upiId"`
	BankName  string `json:"bankName"`
	AccountID int64  `json:"accountId"`
}

// UserRecord is the admin roster view of a user.
type UserRecord struct {
	UserID       int64  `json:"userId"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	UpiID        string `json:"upiId"`
	KYCCompleted bool   `json:"kycCompleted"`
}

// DepositResponse reports the balance after a deposit.
type DepositResponse struct {
	AccountID     int64           `json:"accountId"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	BalanceDate   Timestamp       `json:"balanceDate"`
}
