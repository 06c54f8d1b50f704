package user

import (
	userRepo "dealroom/database/repository/user"
	"dealroom/models"
)

// UserService exposes registration, authentication, and profile management.
type UserService interface {
	// RegisterUser creates an account and returns a signed-in response.
	RegisterUser(req models.UserRegistrationRequest) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and issues a session token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateUser patches profile fields.
	UpdateUser(userID string, req models.UserUpdateRequest) (*models.User, error)
	// DeleteUser removes an account.
	DeleteUser(userID string) error
	// RevokeAuthToken invalidates the user's current session.
	RevokeAuthToken(userID string) error
	// GrantDealAccess adds a deal to an investor's access set.
	GrantDealAccess(userID, dealID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID         string   `json:"id"`
	Token      string   `json:"token"`
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Role       string   `json:"role"`
	LenderID   string   `json:"lenderId,omitempty"`
	DealAccess []string `json:"dealAccess,omitempty"`
}
