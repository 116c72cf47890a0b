package screens

import (
	"testing"

	"github.com/hclbank/netbank/internal/gateway"
)

func TestDeriveUPI(t *testing.T) {
	cases := []struct {
		username string
		want     string
	}{
		{"rahul", "rahul@hcl"},
		{"Rahul Kumar", "rahulkumar@hcl"},
		{"  Priya  Sharma ", "priyasharma@hcl"},
		{"", "@hcl"},
	}
	for _, tc := range cases {
		if got := DeriveUPI(tc.username); got != tc.want {
			t.Fatalf("DeriveUPI(%q): expected %q got %q", tc.username, tc.want, got)
		}
	}
}

func TestDeriveAdminStats(t *testing.T) {
	users := []gateway.UserRecord{
		{UserID: 1, KYCCompleted: true},
		{UserID: 2, KYCCompleted: false},
		{UserID: 3, KYCCompleted: true},
		{UserID: 4, KYCCompleted: false},
	}

	stats := DeriveAdminStats(users)
	if stats.TotalUsers != 4 {
		t.Fatalf("total: expected 4 got %d", stats.TotalUsers)
	}
	if stats.KycVerified != 2 || stats.KycPending != 2 {
		t.Fatalf("expected 2 verified / 2 pending, got %d / %d", stats.KycVerified, stats.KycPending)
	}
	if stats.KycRate != 50 {
		t.Fatalf("rate: expected 50 got %d", stats.KycRate)
	}
}

func TestDeriveAdminStatsEmptyRoster(t *testing.T) {
	stats := DeriveAdminStats(nil)
	if stats.TotalUsers != 0 || stats.KycRate != 0 {
		t.Fatalf("empty roster: expected zeros, got %+v", stats)
	}
}

func TestLatestUsersNewestFirst(t *testing.T) {
	var users []gateway.UserRecord
	for i := int64(1); i <= 8; i++ {
		users = append(users, gateway.UserRecord{UserID: i})
	}

	latest := LatestUsers(users)
	if len(latest) != 6 {
		t.Fatalf("expected 6 entries got %d", len(latest))
	}
	if latest[0].UserID != 8 || latest[5].UserID != 3 {
		t.Fatalf("expected ids 8..3 newest first, got %+v", latest)
	}
}

func TestLatestUsersShortRoster(t *testing.T) {
	users := []gateway.UserRecord{{UserID: 1}, {UserID: 2}}
	latest := LatestUsers(users)
	if len(latest) != 2 || latest[0].UserID != 2 {
		t.Fatalf("expected [2 1], got %+v", latest)
	}
}

func TestKycRequestValidate(t *testing.T) {
	valid := kycRequest{
		Aadhaar: "1234 5678 9012",
		Pan:     "ABCDE1234F",
		Dob:     "1990-04-01",
		Address: "12 MG Road, Bengaluru",
		Phone:   "9876543210",
	}
	if msg := valid.validate(); msg != "" {
		t.Fatalf("expected valid request, got %q", msg)
	}

	cases := []struct {
		name   string
		mutate func(*kycRequest)
	}{
		{"short aadhaar", func(r *kycRequest) { r.Aadhaar = "1234" }},
		{"non-numeric aadhaar", func(r *kycRequest) { r.Aadhaar = "12345678901x" }},
		{"short pan", func(r *kycRequest) { r.Pan = "ABC" }},
		{"missing dob", func(r *kycRequest) { r.Dob = " " }},
		{"missing address", func(r *kycRequest) { r.Address = "" }},
		{"missing phone", func(r *kycRequest) { r.Phone = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			if msg := req.validate(); msg == "" {
				t.Fatalf("expected validation failure")
			}
		})
	}
}
