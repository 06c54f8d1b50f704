// models/invitation.go
package models

import "time"

// Access tiers, in increasing order of document visibility.
const (
	AccessTierEarly = "early"
	AccessTierFull  = "full"
	AccessTierLegal = "legal"
)

// Invitation statuses.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// TierRank orders access tiers; unknown tiers rank below early.
func TierRank(tier string) int {
	switch tier {
	case AccessTierEarly:
		return 1
	case AccessTierFull:
		return 2
	case AccessTierLegal:
		return 3
	default:
		return 0
	}
}

// TierChange records one access-tier transition on an invitation.
type TierChange struct {
	Tier      string    `bson:"tier" json:"tier"`
	ChangedBy string    `bson:"changedBy" json:"changedBy"`
	ChangedAt time.Time `bson:"changedAt" json:"changedAt"`
}

// Invitation grants a lender entry into a deal. At most one invitation
// exists per (dealId, lenderId) pair; the repository enforces this with a
// compound unique index.
type Invitation struct {
	ID          string       `bson:"id" json:"id"`
	DealID      string       `bson:"dealId" json:"dealId"`
	LenderID    string       `bson:"lenderId" json:"lenderId"`
	Email       string       `bson:"email" json:"email"`
	Status      string       `bson:"status" json:"status"`
	NDARequired bool         `bson:"ndaRequired" json:"ndaRequired"`
	NDASignedAt *time.Time   `bson:"ndaSignedAt,omitempty" json:"ndaSignedAt,omitempty"`
	AccessTier  string       `bson:"accessTier" json:"accessTier"`
	TierHistory []TierChange `bson:"tierHistory" json:"tierHistory"`
	InvitedBy   string       `bson:"invitedBy" json:"invitedBy"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// NDASigned reports whether deal materials are open to the invited lender:
// either no NDA is required, or one has been signed.
func (inv *Invitation) NDASigned() bool {
	return !inv.NDARequired || inv.NDASignedAt != nil
}

// InvitationCreateRequest is the payload for POST /api/deals/:id/invitations.
type InvitationCreateRequest struct {
	LenderID    string `json:"lenderId" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	NDARequired bool   `json:"ndaRequired"`
	AccessTier  string `json:"accessTier"`
}

// TierUpdateRequest is the payload for PATCH .../invitations/:lenderId/tier.
type TierUpdateRequest struct {
	AccessTier string `json:"accessTier" binding:"required"`
}
