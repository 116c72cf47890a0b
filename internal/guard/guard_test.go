package guard

import (
	"testing"

	"github.com/hclbank/netbank/internal/session"
)

var customerPaths = []string{"/dashboard", "/send-money", "/add-money", "/history", "/profile"}

func customer(kyc bool) *session.Principal {
	return &session.Principal{Token: "t", Role: session.RoleCustomer, Username: "rahul", KYCCompleted: kyc}
}

func admin() *session.Principal {
	return &session.Principal{Token: "t", Role: session.RoleAdmin, Username: "root", KYCCompleted: true}
}

func TestAbsentPrincipalRedirectsToLogin(t *testing.T) {
	reqs := []Requirement{
		{},
		{Role: session.RoleCustomer},
		{Role: session.RoleAdmin},
		{Role: session.RoleCustomer, KYCExempt: true},
	}
	for _, path := range append(customerPaths, KycPath, AdminHomePath) {
		for _, req := range reqs {
			d := Decide(nil, path, req)
			if d.Kind != RedirectLogin {
				t.Fatalf("path %s req %+v: expected RedirectLogin got %s", path, req, d.Kind)
			}
			if d.Target != LoginPath {
				t.Fatalf("path %s: expected target %s got %s", path, LoginPath, d.Target)
			}
			if d.From != path {
				t.Fatalf("path %s: expected From to carry requested path, got %q", path, d.From)
			}
		}
	}
}

func TestAdminOnCustomerPathsGoesToAdminHome(t *testing.T) {
	for _, path := range append(customerPaths, KycPath) {
		d := Decide(admin(), path, Requirement{Role: session.RoleCustomer})
		if d.Kind != RedirectRoleHome {
			t.Fatalf("path %s: expected RedirectRoleHome got %s", path, d.Kind)
		}
		if d.Target != AdminHomePath {
			t.Fatalf("path %s: expected target %s got %s", path, AdminHomePath, d.Target)
		}
	}
}

func TestCustomerOnAdminPathsGoesToCustomerHome(t *testing.T) {
	// Verified customer lands on the dashboard, never on the KYC screen:
	// the role check fires before the KYC check.
	for _, p := range []*session.Principal{customer(true), customer(false)} {
		d := Decide(p, AdminHomePath, Requirement{Role: session.RoleAdmin})
		if d.Kind != RedirectRoleHome {
			t.Fatalf("kyc=%v: expected RedirectRoleHome got %s", p.KYCCompleted, d.Kind)
		}
		if d.Target != CustomerHomePath {
			t.Fatalf("kyc=%v: expected target %s got %s", p.KYCCompleted, CustomerHomePath, d.Target)
		}
	}
}

func TestUnverifiedCustomerIsSentToKyc(t *testing.T) {
	for _, path := range customerPaths {
		d := Decide(customer(false), path, Requirement{Role: session.RoleCustomer})
		if d.Kind != RedirectKyc {
			t.Fatalf("path %s: expected RedirectKyc got %s", path, d.Kind)
		}
		if d.Target != KycPath {
			t.Fatalf("path %s: expected target %s got %s", path, KycPath, d.Target)
		}
	}
}

func TestUnverifiedCustomerMayOpenKycScreen(t *testing.T) {
	d := Decide(customer(false), KycPath, Requirement{Role: session.RoleCustomer, KYCExempt: true})
	if d.Kind != Allow {
		t.Fatalf("expected Allow got %s", d.Kind)
	}

	// Even without the explicit exemption the KYC path never redirects to
	// itself.
	d = Decide(customer(false), KycPath, Requirement{Role: session.RoleCustomer})
	if d.Kind != Allow {
		t.Fatalf("expected Allow on the KYC path itself, got %s", d.Kind)
	}
}

func TestVerifiedCustomerIsAllowed(t *testing.T) {
	for _, path := range append(customerPaths, KycPath) {
		d := Decide(customer(true), path, Requirement{Role: session.RoleCustomer})
		if d.Kind != Allow {
			t.Fatalf("path %s: expected Allow got %s", path, d.Kind)
		}
	}
}

func TestAdminIsAllowedOnAdminPaths(t *testing.T) {
	d := Decide(admin(), AdminHomePath, Requirement{Role: session.RoleAdmin})
	if d.Kind != Allow {
		t.Fatalf("expected Allow got %s", d.Kind)
	}
}

func TestAdminWithoutKycIsNotRedirected(t *testing.T) {
	// KYC gating applies to customers only.
	p := &session.Principal{Token: "t", Role: session.RoleAdmin}
	d := Decide(p, AdminHomePath, Requirement{Role: session.RoleAdmin})
	if d.Kind != Allow {
		t.Fatalf("expected Allow got %s", d.Kind)
	}
}

func TestResolveRoot(t *testing.T) {
	cases := []struct {
		name string
		p    *session.Principal
		want string
	}{
		{"absent", nil, LoginPath},
		{"admin", admin(), AdminHomePath},
		{"unverified customer", customer(false), KycPath},
		{"verified customer", customer(true), CustomerHomePath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRoot(tc.p); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestRoleHome(t *testing.T) {
	if got := RoleHome(session.RoleAdmin); got != AdminHomePath {
		t.Fatalf("admin home: got %s", got)
	}
	if got := RoleHome(session.RoleCustomer); got != CustomerHomePath {
		t.Fatalf("customer home: got %s", got)
	}
}
