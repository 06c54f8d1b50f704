package userRepo

import (
	"dealroom/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GrantDealAccess adds a deal ID to the user's access set.
	GrantDealAccess(userID, dealID string) error
	// SetTokenHash stores the hash of the user's current session token.
	SetTokenHash(userID, tokenHash string) error
	// FindByLenderID retrieves all users attached to a lender.
	FindByLenderID(lenderID string) ([]models.User, error)
}
