// Package guard decides, for every navigation, whether the current principal
// may see the requested screen. It is the single place role and KYC branching
// lives; routes declare a Requirement and middleware enforces the Decision.
package guard

import "github.com/hclbank/netbank/internal/session"

// Well-known navigation targets.
const (
	LoginPath        = "/login"
	KycPath          = "/kyc"
	CustomerHomePath = "/dashboard"
	AdminHomePath    = "/admin/dashboard"
)

// Requirement describes what a route demands of the principal. A zero
// Requirement marks a public route.
type Requirement struct {
	// Role, when set, is the only role allowed through.
	Role session.Role
	// KYCExempt lets a customer with incomplete KYC through. Only the KYC
	// intake screen sets it; without the exemption that screen would
	// redirect to itself forever.
	KYCExempt bool
}

// Kind enumerates guard outcomes.
type Kind int

const (
	Allow Kind = iota
	RedirectLogin
	RedirectRoleHome
	RedirectKyc
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectRoleHome:
		return "redirect-role-home"
	case RedirectKyc:
		return "redirect-kyc"
	default:
		return "unknown"
	}
}

// Decision is the guard outcome for one navigation. Target is the redirect
// destination for the redirect kinds; From carries the originally requested
// path so login can return the user there afterwards.
type Decision struct {
	Kind   Kind
	Target string
	From   string
}

// Decide evaluates the access rules for one navigation, first match wins:
//
//  1. no principal: redirect to login, remembering the requested path;
//  2. role mismatch: redirect to the principal's own home, so a wrong-role
//     user never learns anything further about the route;
//  3. customer with incomplete KYC anywhere but the KYC screen: redirect to
//     the KYC intake;
//  4. otherwise allow.
//
// Authentication is checked before role and role before KYC so that an
// unauthenticated or wrong-role caller cannot observe KYC state.
func Decide(p *session.Principal, path string, req Requirement) Decision {
	if p == nil {
		return Decision{Kind: RedirectLogin, Target: LoginPath, From: path}
	}

	if req.Role != "" && p.Role != req.Role {
		return Decision{Kind: RedirectRoleHome, Target: RoleHome(p.Role)}
	}

	if p.Role == session.RoleCustomer && !p.KYCCompleted && !req.KYCExempt && path != KycPath {
		return Decision{Kind: RedirectKyc, Target: KycPath}
	}

	return Decision{Kind: Allow}
}

// RoleHome returns the landing page for a role.
func RoleHome(role session.Role) string {
	if role == session.RoleAdmin {
		return AdminHomePath
	}
	return CustomerHomePath
}

// ResolveRoot picks the destination for a request with no specific page,
// with the same precedence Decide applies: login when absent, the admin home
// for admins, KYC intake for unverified customers, the dashboard otherwise.
func ResolveRoot(p *session.Principal) string {
	switch {
	case p == nil:
		return LoginPath
	case p.Role == session.RoleAdmin:
		return AdminHomePath
	case !p.KYCCompleted:
		return KycPath
	default:
		return CustomerHomePath
	}
}
