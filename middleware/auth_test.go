package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealroom/models"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }
func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}
func (r *fakeUserRepo) GrantDealAccess(userID, dealID string) error { return nil }
func (r *fakeUserRepo) SetTokenHash(userID, tokenHash string) error { return nil }
func (r *fakeUserRepo) FindByLenderID(lenderID string) ([]models.User, error) {
	return nil, nil
}

func authRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authRouter(&fakeUserRepo{users: map[string]*models.User{}})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := authRouter(&fakeUserRepo{users: map[string]*models.User{}})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "desk@bank.example", utils.AuthTokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: "Bookrunner", TokenHash: utils.HashToken(token)},
	}}

	r := authRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "desk@bank.example", utils.AuthTokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	// TokenHash cleared on revoke; the presented token no longer matches.
	repo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: "Bookrunner", TokenHash: ""},
	}}

	r := authRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
