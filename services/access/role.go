// Package access holds the role model, the capability table, and the
// route-level authorization gate for the deal room.
package access

import "strings"

// Role is the closed set of deal-room roles.
type Role string

const (
	RoleIssuer     Role = "Issuer"
	RoleBookrunner Role = "Bookrunner"
	RoleInvestor   Role = "Investor"
	// RoleUnknown is returned for anything outside the closed set.
	RoleUnknown Role = ""
)

// NormalizeRole maps an arbitrary role string onto the closed enumeration,
// case-insensitively. Every role comparison in the codebase goes through
// this single function.
func NormalizeRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "issuer":
		return RoleIssuer
	case "bookrunner":
		return RoleBookrunner
	case "investor", "lender":
		return RoleInvestor
	default:
		return RoleUnknown
	}
}

// Valid reports whether the role is one of the three defined roles.
func (r Role) Valid() bool {
	return r == RoleIssuer || r == RoleBookrunner || r == RoleInvestor
}
