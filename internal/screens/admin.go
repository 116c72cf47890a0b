package screens

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hclbank/netbank/internal/gateway"
)

const latestUserLimit = 6

// AdminStats are the aggregate counts the console derives from the roster.
type AdminStats struct {
	TotalUsers  int `json:"totalUsers"`
	KycPending  int `json:"kycPending"`
	KycVerified int `json:"kycVerified"`
	KycRate     int `json:"kycRate"` // percent of verified users, 0 when empty
}

type adminView struct {
	Users  []gateway.UserRecord `json:"users"`
	Latest []gateway.UserRecord `json:"latestUsers"`
	Stats  AdminStats           `json:"stats"`
}

// DeriveAdminStats computes the console aggregates from a fetched roster.
func DeriveAdminStats(users []gateway.UserRecord) AdminStats {
	stats := AdminStats{TotalUsers: len(users)}
	for _, u := range users {
		if u.KYCCompleted {
			stats.KycVerified++
		} else {
			stats.KycPending++
		}
	}
	if stats.TotalUsers > 0 {
		stats.KycRate = int(float64(stats.KycVerified)/float64(stats.TotalUsers)*100 + 0.5)
	}
	return stats
}

// LatestUsers returns the newest entries of the roster, newest first.
func LatestUsers(users []gateway.UserRecord) []gateway.UserRecord {
	n := len(users)
	limit := latestUserLimit
	if n < limit {
		limit = n
	}
	latest := make([]gateway.UserRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		latest = append(latest, users[i])
	}
	return latest
}

func (h *Handler) adminView(c *fiber.Ctx) (adminView, error) {
	users, err := h.bankFor(c).AllUsers(c.UserContext())
	if err != nil {
		return adminView{}, apiFail(err, "Failed to fetch users")
	}
	if users == nil {
		users = []gateway.UserRecord{}
	}
	return adminView{
		Users:  users,
		Latest: LatestUsers(users),
		Stats:  DeriveAdminStats(users),
	}, nil
}

// AdminDashboard lists the full roster with derived aggregates.
func (h *Handler) AdminDashboard(c *fiber.Ctx) error {
	view, err := h.adminView(c)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// AdminSetKYC toggles a user's KYC flag, then refetches the roster rather
// than patching the local copy.
func (h *Handler) AdminSetKYC(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	status, err := strconv.ParseBool(c.Query("status"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "status must be true or false")
	}

	if err := h.bankFor(c).SetKYCStatus(c.UserContext(), userID, status); err != nil {
		return apiFail(err, "Action failed")
	}

	view, viewErr := h.adminView(c)
	if viewErr != nil {
		return viewErr
	}

	message := "KYC Approved"
	if !status {
		message = "KYC Revoked"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"users":   view.Users,
		"latest":  view.Latest,
		"stats":   view.Stats,
	})
}
