package session

// Role is the authorization role the backend asserts for a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Principal is the authenticated identity held for one browser session. The
// token is opaque to the gateway and only ever forwarded as a bearer
// credential.
type Principal struct {
	Token        string
	Role         Role
	Username     string
	Email        string
	KYCCompleted bool
}

// Changes is a partial Principal mutation. Nil fields are left untouched; the
// token and role never change mid-session, only a fresh login replaces them.
type Changes struct {
	Username     *string
	Email        *string
	KYCCompleted *bool
}

func (c Changes) apply(p Principal) Principal {
	if c.Username != nil {
		p.Username = *c.Username
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.KYCCompleted != nil {
		p.KYCCompleted = *c.KYCCompleted
	}
	return p
}

// Bool is a convenience for building Changes literals.
func Bool(v bool) *bool { return &v }

// String is a convenience for building Changes literals.
func String(v string) *string { return &v }
