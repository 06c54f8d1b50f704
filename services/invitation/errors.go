package invitation

import "errors"

var (
	// ErrNotInvited signals an NDA or tier operation without an invitation.
	ErrNotInvited = errors.New("lender has no invitation on this deal")
	// ErrNoNDARequired signals a signature against an NDA-free invitation.
	ErrNoNDARequired = errors.New("invitation does not require an NDA")
	// ErrInvalidTier signals a tier outside {early, full, legal}.
	ErrInvalidTier = errors.New("access tier must be one of early, full, legal")
	// ErrNotPermitted signals a capability check failed for the acting user.
	ErrNotPermitted = errors.New("not permitted")
)
