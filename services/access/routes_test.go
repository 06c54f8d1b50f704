package access

import "testing"

func TestMatchRoute(t *testing.T) {
	tests := []struct {
		path        string
		wantPattern string
		wantDealID  string
		wantOK      bool
	}{
		{"/deals", "/deals", "", true},
		{"/deal/101/overview", "/deal/:id/overview", "101", true},
		{"/deal/abc-123/book", "/deal/:id/book", "abc-123", true},
		{"/deal/101/lenders", "/deal/:id/lenders", "101", true},
		{"/investor", "/investor", "", true},
		{"/investor/deal/101", "/investor/deal/:id", "101", true},
		{"/deal/101/overview/", "/deal/:id/overview", "101", true},
		{"/deal/101", "", "", false},
		{"/deal/101/allocations", "", "", false},
		{"/", "", "", false},
		{"/login", "", "", false},
	}
	for _, tt := range tests {
		route, dealID, ok := MatchRoute(tt.path)
		if ok != tt.wantOK {
			t.Fatalf("MatchRoute(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if route.Pattern != tt.wantPattern {
			t.Fatalf("MatchRoute(%q) pattern = %q, want %q", tt.path, route.Pattern, tt.wantPattern)
		}
		if dealID != tt.wantDealID {
			t.Fatalf("MatchRoute(%q) dealID = %q, want %q", tt.path, dealID, tt.wantDealID)
		}
	}
}

func TestRouteAllows(t *testing.T) {
	r := Route{Pattern: "/deal/:id/book", Roles: arrangerRoles}
	if !r.Allows(RoleIssuer) || !r.Allows(RoleBookrunner) {
		t.Fatal("arranger route should allow issuer and bookrunner")
	}
	if r.Allows(RoleInvestor) || r.Allows(RoleUnknown) {
		t.Fatal("arranger route should reject investors and unknown roles")
	}
}
