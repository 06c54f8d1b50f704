// models/user.go
package models

import "time"

// User represents a deal-room participant. Role decides which pages and
// operations the user may reach; investors additionally carry the set of
// deal IDs they have been granted access to.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	LenderID     string    `bson:"lenderId,omitempty" json:"lenderId,omitempty"`
	DealAccess   []string  `bson:"dealAccess,omitempty" json:"dealAccess,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasDealAccess reports whether the user has been granted access to the deal.
func (u *User) HasDealAccess(dealID string) bool {
	for _, id := range u.DealAccess {
		if id == dealID {
			return true
		}
	}
	return false
}

// UserRegistrationRequest is the payload for POST /api/users/register.
type UserRegistrationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	LenderID string `json:"lenderId"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	Name     string `json:"name"`
	FCMToken string `json:"fcmToken"`
}
