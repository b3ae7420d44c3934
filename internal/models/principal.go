package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Role enumerates the two disjoint principal kinds.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleTenant
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTenant:
		return "tenant"
	default:
		return "unknown"
	}
}

// SessionPrefix is the identifier prefix persisted in the session.
func (r Role) SessionPrefix() string {
	switch r {
	case RoleAdmin:
		return "user"
	case RoleTenant:
		return "tenant"
	default:
		return ""
	}
}

// Principal is the authenticated actor, resolved once per request.
type Principal struct {
	Role     Role
	ID       int64
	Username string
	Email    string
}

func (p *Principal) IsAdmin() bool  { return p != nil && p.Role == RoleAdmin }
func (p *Principal) IsTenant() bool { return p != nil && p.Role == RoleTenant }

// SessionID renders the prefixed identifier stored in the session token.
func (p *Principal) SessionID() string {
	return fmt.Sprintf("%s_%d", p.Role.SessionPrefix(), p.ID)
}

func AdminPrincipal(a *Admin) *Principal {
	return &Principal{Role: RoleAdmin, ID: a.ID, Username: a.Username}
}

func TenantPrincipal(t *TenantAccount) *Principal {
	return &Principal{Role: RoleTenant, ID: t.ID, Username: t.Username, Email: t.Email}
}

// SessionRef is a parsed session identifier. Role is zero when the
// identifier carried no recognised prefix.
type SessionRef struct {
	Role Role
	ID   int64
}

// ParseSessionID splits a stored identifier on its first '_'.
// "user_3" and "tenant_3" resolve to a role; a bare "3" or an unknown
// prefix yields Role 0 and the trailing numeric id.
func ParseSessionID(s string) (SessionRef, error) {
	prefix, rest, found := strings.Cut(s, "_")
	if !found {
		rest = s
		prefix = ""
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return SessionRef{}, fmt.Errorf("invalid session identifier %q: %w", s, err)
	}
	switch prefix {
	case RoleAdmin.SessionPrefix():
		return SessionRef{Role: RoleAdmin, ID: id}, nil
	case RoleTenant.SessionPrefix():
		return SessionRef{Role: RoleTenant, ID: id}, nil
	default:
		return SessionRef{ID: id}, nil
	}
}
