package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealroom/models"

	"github.com/gin-gonic/gin"
)

func gateRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	})
	r.GET("/api/deals/:id/book", Gate("/deal/:id/book"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/api/deals/:id/overview", Gate("/deal/:id/overview"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateAllowsPermittedRole(t *testing.T) {
	r := gateRouter(&models.User{ID: "u1", Role: "Bookrunner"})
	w := doGet(t, r, "/api/deals/101/book")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestGateDeniesInvestorWithoutAccess(t *testing.T) {
	r := gateRouter(&models.User{ID: "u1", Role: "Investor", DealAccess: []string{"222"}})
	w := doGet(t, r, "/api/deals/101/overview")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["redirect"] != "/investor" {
		t.Fatalf("redirect = %q, want /investor", body["redirect"])
	}
	if body["reason"] != "unauthorized" {
		t.Fatalf("reason = %q, want unauthorized", body["reason"])
	}
	if body["from"] != "/deal/101/overview" {
		t.Fatalf("from = %q, want the client path", body["from"])
	}
}

func TestGateDeniesInvestorOnRestrictedPage(t *testing.T) {
	r := gateRouter(&models.User{ID: "u1", Role: "Investor", DealAccess: []string{"101"}})
	w := doGet(t, r, "/api/deals/101/book")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["redirect"] != "/investor/deal/101" {
		t.Fatalf("redirect = %q, want /investor/deal/101", body["redirect"])
	}
	if body["reason"] != "restricted" {
		t.Fatalf("reason = %q, want restricted", body["reason"])
	}
}

func TestGateUnauthenticatedGets401(t *testing.T) {
	r := gateRouter(nil)
	w := doGet(t, r, "/api/deals/101/overview")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["redirect"] != "/login" {
		t.Fatalf("redirect = %q, want /login", body["redirect"])
	}
}
