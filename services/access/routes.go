package access

import "strings"

// Route is a client route pattern together with the roles allowed to open
// it. Patterns use ":id" for the deal-ID segment.
type Route struct {
	Pattern string
	Roles   []Role
}

// Allows reports whether the role is in the route's allowed set.
func (r Route) Allows(role Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

var allRoles = []Role{RoleIssuer, RoleBookrunner, RoleInvestor}
var arrangerRoles = []Role{RoleIssuer, RoleBookrunner}

// Routes is the authoritative route surface of the deal room. The gate
// consults it both from the pure Authorize function and from the HTTP
// middleware.
var Routes = []Route{
	{Pattern: "/deals", Roles: arrangerRoles},
	{Pattern: "/deal/:id/overview", Roles: allRoles},
	{Pattern: "/deal/:id/terms", Roles: arrangerRoles},
	{Pattern: "/deal/:id/documents", Roles: allRoles},
	{Pattern: "/deal/:id/qa", Roles: allRoles},
	{Pattern: "/deal/:id/book", Roles: arrangerRoles},
	{Pattern: "/deal/:id/commitment", Roles: []Role{RoleInvestor}},
	{Pattern: "/deal/:id/checklist", Roles: arrangerRoles},
	{Pattern: "/deal/:id/lenders", Roles: []Role{RoleBookrunner}},
	{Pattern: "/investor", Roles: []Role{RoleInvestor}},
	{Pattern: "/investor/deal/:id", Roles: []Role{RoleInvestor}},
}

// MatchRoute resolves a concrete path against the route table. It returns
// the matched route, the deal ID captured by the ":id" segment (empty when
// the pattern has none), and whether a match was found.
func MatchRoute(path string) (Route, string, bool) {
	segments := splitPath(path)
	for _, route := range Routes {
		if dealID, ok := matchPattern(route.Pattern, segments); ok {
			return route, dealID, true
		}
	}
	return Route{}, "", false
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchPattern(pattern string, segments []string) (string, bool) {
	want := splitPath(pattern)
	if len(want) != len(segments) {
		return "", false
	}
	var dealID string
	for i, w := range want {
		if w == ":id" {
			if segments[i] == "" {
				return "", false
			}
			dealID = segments[i]
			continue
		}
		if w != segments[i] {
			return "", false
		}
	}
	return dealID, true
}
