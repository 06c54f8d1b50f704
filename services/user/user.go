package user

import (
	"context"
	"fmt"
	"time"

	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an account and signs the new user in.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationRequest) (*AuthResponse, error) {
	role := access.NormalizeRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if role == access.RoleInvestor && req.LenderID == "" {
		return nil, ErrLenderRequired
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         string(role),
		LenderID:     req.LenderID,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(u)
}

// AuthenticateUser verifies credentials and issues a session token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(u)
}

// issueToken signs a JWT, stores its hash on the user record, and primes
// the auth cache so the middleware skips the DB on the next request.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(u.ID, hash); err != nil {
		return nil, fmt.Errorf("store token hash: %w", err)
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = cache.Set(ctx, utils.AuthCachePrefix+u.ID, hash, utils.AuthCacheTTL).Err()
	}

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		LenderID:   u.LenderID,
		DealAccess: u.DealAccess,
	}, nil
}

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateUser patches profile fields.
func (s *DefaultUserService) UpdateUser(userID string, req models.UserUpdateRequest) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.FCMToken != "" {
		u.FCMToken = req.FCMToken
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes an account and its cached session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeAuthToken(userID); err != nil {
		return err
	}
	return s.Repo.Delete(userID)
}

// RevokeAuthToken invalidates the user's current session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return fmt.Errorf("clear token hash: %w", err)
	}
	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = cache.Del(ctx, utils.AuthCachePrefix+userID).Err()
	}
	return nil
}

// GrantDealAccess adds a deal to an investor's access set.
func (s *DefaultUserService) GrantDealAccess(userID, dealID string) error {
	return s.Repo.GrantDealAccess(userID, dealID)
}
