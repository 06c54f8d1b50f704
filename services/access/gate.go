package access

import (
	"net/url"

	"dealroom/models"
)

// Redirect reason codes surfaced to the client banner.
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRestricted   = "restricted"
)

// Safe redirect targets.
const (
	PathLogin        = "/login"
	PathDeals        = "/deals"
	PathInvestorHome = "/investor"
)

// Decision is the outcome of an authorization check: either Allow, or a
// redirect target with an optional reason code and the origin path.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
	Reason   string `json:"reason,omitempty"`
	From     string `json:"from,omitempty"`
}

// RedirectURL renders the redirect target with reason and from query
// parameters attached. The client banner strips them after display.
func (d Decision) RedirectURL() string {
	if d.Allow || d.Redirect == "" {
		return ""
	}
	q := url.Values{}
	if d.Reason != "" {
		q.Set("reason", d.Reason)
	}
	if d.From != "" {
		q.Set("from", d.From)
	}
	if len(q) == 0 {
		return d.Redirect
	}
	return d.Redirect + "?" + q.Encode()
}

func allow() Decision {
	return Decision{Allow: true}
}

func deny(redirect, reason, from string) Decision {
	return Decision{Redirect: redirect, Reason: reason, From: from}
}

// Authorize applies the route gate to a user and a concrete path. The rule
// order is load-bearing: an investor lacking deal access is always told
// "unauthorized" and sent to their dashboard, never "restricted" — a
// restricted message would falsely imply they hold deal access.
//
//  1. Unauthenticated users are sent to login, with no reason code.
//  2. On deal-scoped routes an investor must be on the deal's access list;
//     failing that redirects to the investor dashboard with reason
//     "unauthorized". This runs before any role check.
//  3. A role outside the route's allowed set redirects: investors with a
//     deal ID (they passed rule 2, so they do have deal access) go to the
//     deal's investor-safe home with reason "restricted"; investors
//     without one go to the investor dashboard with reason "unauthorized";
//     every other role goes to the deals list with reason "unauthorized".
//  4. Otherwise the request is allowed.
//
// Paths outside the route table are not governed by the gate; they resolve
// to Allow once the user is authenticated.
func Authorize(user *models.User, path string) Decision {
	if user == nil {
		return deny(PathLogin, "", path)
	}

	route, dealID, ok := MatchRoute(path)
	if !ok {
		return allow()
	}

	role := NormalizeRole(user.Role)

	if dealID != "" && role == RoleInvestor && !user.HasDealAccess(dealID) {
		return deny(PathInvestorHome, ReasonUnauthorized, path)
	}

	if !route.Allows(role) {
		switch {
		case role == RoleInvestor && dealID != "":
			return deny(PathInvestorHome+"/deal/"+dealID, ReasonRestricted, path)
		case role == RoleInvestor:
			return deny(PathInvestorHome, ReasonUnauthorized, path)
		default:
			return deny(PathDeals, ReasonUnauthorized, path)
		}
	}

	return allow()
}
