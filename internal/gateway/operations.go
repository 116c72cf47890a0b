package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Login exchanges credentials for the principal fields and a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates a CUSTOMER account. The caller still logs in separately.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{
		"userName": username,
		"email":    email,
		"password": password,
		"role":     "CUSTOMER",
	}
	return c.post(ctx, "/auth/register", body, nil)
}

// MyAccount fetches the caller's account snapshot.
func (c *Client) MyAccount(ctx context.Context) (Account, error) {
	var out Account
	if err := c.get(ctx, "/account/my-account", &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// Deposit credits the caller's account and returns the resulting balance.
func (c *Client) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (DepositResponse, error) {
	body := map[string]any{"accountId": accountID, "amount": amount}
	var out DepositResponse
	if err := c.post(ctx, "/account/deposit", body, &out); err != nil {
		return DepositResponse{}, err
	}
	return out, nil
}

// SearchByUPI resolves a payee by exact UPI identifier.
func (c *Client) SearchByUPI(ctx context.Context, upiID string) (SearchableUser, error) {
	var out SearchableUser
	path := "/users/search?upiId=" + url.QueryEscape(upiID)
	if err := c.get(ctx, path, &out); err != nil {
		return SearchableUser{}, err
	}
	return out, nil
}

// AllSearchable lists every payee identity the bank exposes for search.
func (c *Client) AllSearchable(ctx context.Context) ([]SearchableUser, error) {
	var out []SearchableUser
	if err := c.get(ctx, "/users/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitKYC marks the caller's KYC complete on the backend.
func (c *Client) SubmitKYC(ctx context.Context) error {
	return c.post(ctx, "/users/kyc/submit", nil, nil)
}

// AllUsers fetches the full user roster. Admin only.
func (c *Client) AllUsers(ctx context.Context) ([]UserRecord, error) {
	var out []UserRecord
	if err := c.get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetKYCStatus flips a user's KYC flag. Admin only.
func (c *Client) SetKYCStatus(ctx context.Context, userID int64, status bool) error {
	path := fmt.Sprintf("/users/%d/kyc-status?status=%s", userID, strconv.FormatBool(status))
	return c.put(ctx, path, nil, nil)
}

// History lists the ordered transactions for an account.
func (c *Client) History(ctx context.Context, accountID int64) ([]Transaction, error) {
	if accountID <= 0 {
		return nil, ErrAccountMissing
	}
	var out []Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/history/%d", accountID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer moves funds between two accounts.
func (c *Client) Transfer(ctx context.Context, sourceAccountID, targetAccountID int64, amount decimal.Decimal) error {
	body := map[string]any{
		"sourceAccountId": sourceAccountID,
		"targetAccountId": targetAccountID,
		"amount":          amount,
	}
	return c.post(ctx, "/transactions/transfer", body, nil)
}
