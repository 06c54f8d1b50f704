package access

import (
	"testing"

	"dealroom/models"
)

func investor(deals ...string) *models.User {
	return &models.User{ID: "u1", Role: "Investor", LenderID: "l1", DealAccess: deals}
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	d := Authorize(nil, "/deal/101/overview")
	if d.Allow {
		t.Fatal("unauthenticated request should be denied")
	}
	if d.Redirect != PathLogin {
		t.Fatalf("redirect = %q, want %q", d.Redirect, PathLogin)
	}
	if d.Reason != "" {
		t.Fatalf("login redirect should carry no reason, got %q", d.Reason)
	}
	if d.From != "/deal/101/overview" {
		t.Fatalf("from = %q, want original path", d.From)
	}
}

func TestAuthorizeInvestorWithoutDealAccess(t *testing.T) {
	// Deal-access check runs before the role check: even on a page the
	// investor role could open, a missing grant reads as unauthorized.
	for _, path := range []string{"/deal/101/overview", "/deal/101/book", "/deal/101/qa"} {
		d := Authorize(investor("999"), path)
		if d.Allow {
			t.Fatalf("%s: investor without deal access should be denied", path)
		}
		if d.Redirect != PathInvestorHome {
			t.Fatalf("%s: redirect = %q, want %q", path, d.Redirect, PathInvestorHome)
		}
		if d.Reason != ReasonUnauthorized {
			t.Fatalf("%s: reason = %q, want %q", path, d.Reason, ReasonUnauthorized)
		}
	}
}

func TestAuthorizeInvestorRestrictedPage(t *testing.T) {
	// Investor with deal access opening an arranger-only page lands on the
	// deal's investor home with the softer "restricted" reason.
	d := Authorize(investor("101"), "/deal/101/book")
	if d.Allow {
		t.Fatal("investor should not reach the book")
	}
	if d.Redirect != "/investor/deal/101" {
		t.Fatalf("redirect = %q, want /investor/deal/101", d.Redirect)
	}
	if d.Reason != ReasonRestricted {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonRestricted)
	}
}

func TestAuthorizeInvestorOnDealsList(t *testing.T) {
	d := Authorize(investor("101"), "/deals")
	if d.Allow {
		t.Fatal("investor should not reach the arranger deals list")
	}
	if d.Redirect != PathInvestorHome {
		t.Fatalf("redirect = %q, want %q", d.Redirect, PathInvestorHome)
	}
	if d.Reason != ReasonUnauthorized {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonUnauthorized)
	}
}

func TestAuthorizeArrangerOnInvestorPage(t *testing.T) {
	bookrunner := &models.User{ID: "u2", Role: "Bookrunner"}
	d := Authorize(bookrunner, "/deal/101/commitment")
	if d.Allow {
		t.Fatal("bookrunner should not reach the commitment page")
	}
	if d.Redirect != PathDeals {
		t.Fatalf("redirect = %q, want %q", d.Redirect, PathDeals)
	}
	if d.Reason != ReasonUnauthorized {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonUnauthorized)
	}
}

func TestAuthorizeAllowed(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		path string
	}{
		{"issuer overview", &models.User{Role: "Issuer"}, "/deal/101/overview"},
		{"issuer terms", &models.User{Role: "Issuer"}, "/deal/101/terms"},
		{"bookrunner lenders", &models.User{Role: "Bookrunner"}, "/deal/101/lenders"},
		{"bookrunner deals list", &models.User{Role: "Bookrunner"}, "/deals"},
		{"investor with access overview", investor("101"), "/deal/101/overview"},
		{"investor with access commitment", investor("101"), "/deal/101/commitment"},
		{"investor dashboard", investor(), "/investor"},
		{"investor deal home", investor("101"), "/investor/deal/101"},
	}
	for _, tt := range tests {
		if d := Authorize(tt.user, tt.path); !d.Allow {
			t.Fatalf("%s: expected allow, got redirect %q reason %q", tt.name, d.Redirect, d.Reason)
		}
	}
}

func TestAuthorizeIssuerHasNoDealAccessCheck(t *testing.T) {
	// The access-list check applies to investors only; arrangers see every
	// deal without explicit grants.
	issuer := &models.User{Role: "Issuer"}
	if d := Authorize(issuer, "/deal/777/documents"); !d.Allow {
		t.Fatalf("issuer should see any deal, got redirect %q", d.Redirect)
	}
}

func TestAuthorizeUnknownRoleRedirectsToDeals(t *testing.T) {
	u := &models.User{Role: "auditor"}
	d := Authorize(u, "/deal/101/overview")
	if d.Allow {
		t.Fatal("unknown role should be denied on governed routes")
	}
	if d.Redirect != PathDeals || d.Reason != ReasonUnauthorized {
		t.Fatalf("got redirect %q reason %q", d.Redirect, d.Reason)
	}
}

func TestAuthorizeUngovernedPathAllowed(t *testing.T) {
	u := &models.User{Role: "Investor"}
	for _, path := range []string{"/", "/profile", "/deal/101/unknown"} {
		if d := Authorize(u, path); !d.Allow {
			t.Fatalf("%s: path outside the route table should be allowed, got redirect %q", path, d.Redirect)
		}
	}
}

func TestDecisionRedirectURL(t *testing.T) {
	d := deny(PathInvestorHome, ReasonUnauthorized, "/deal/101/overview")
	got := d.RedirectURL()
	want := "/investor?from=%2Fdeal%2F101%2Foverview&reason=unauthorized"
	if got != want {
		t.Fatalf("RedirectURL() = %q, want %q", got, want)
	}

	login := deny(PathLogin, "", "")
	if login.RedirectURL() != PathLogin {
		t.Fatalf("bare redirect should carry no query, got %q", login.RedirectURL())
	}

	if allow().RedirectURL() != "" {
		t.Fatal("allow decision should have no redirect URL")
	}
}
