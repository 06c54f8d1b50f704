package deal

import (
	"time"

	"dealroom/models"
	"dealroom/services/access"
)

// Context is the read-only composite a deal page consumes: the deal record,
// the viewer's invitation (if any), derived deadlines, and capabilities.
// It is recomputed in full from its inputs on every read; nothing in it is
// cached or partially updated.
type Context struct {
	Deal         *models.Deal        `json:"deal"`
	Invitation   *models.Invitation  `json:"invitation,omitempty"`
	Deadlines    []models.Deadline   `json:"deadlines"`
	NextDeadline *models.Deadline    `json:"nextDeadline,omitempty"`
	Capabilities access.Capabilities `json:"capabilities"`
	NDASigned    bool                `json:"ndaSigned"`
	AccessTier   string              `json:"accessTier,omitempty"`
}

// BuildContext assembles the composite from a deal, the viewer's invitation
// (nil for issuers and bookrunners), and the viewer. NDASigned is true iff
// the invitation requires no NDA or records a signed timestamp; viewers
// without an invitation are not NDA-gated at all.
func BuildContext(d *models.Deal, inv *models.Invitation, user *models.User, now time.Time) Context {
	ndaSigned := true
	accessTier := ""
	var ndaSignedAt *time.Time

	if inv != nil {
		ndaSigned = inv.NDASigned()
		accessTier = inv.AccessTier
		ndaSignedAt = inv.NDASignedAt
		if !inv.NDARequired {
			// No NDA to sign; deadlines are not gated.
			signedAlways := inv.CreatedAt
			ndaSignedAt = &signedAlways
		}
	} else {
		n := now
		ndaSignedAt = &n
	}

	deadlines := DeriveDeadlinesAt(d, ndaSignedAt, now)
	next := NextDeadlineAt(d, ndaSignedAt, now)

	return Context{
		Deal:         d,
		Invitation:   inv,
		Deadlines:    deadlines,
		NextDeadline: next,
		Capabilities: access.CapabilitiesFor(user.Role),
		NDASigned:    ndaSigned,
		AccessTier:   accessTier,
	}
}
