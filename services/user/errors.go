package user

import "errors"

var (
	// ErrEmailTaken signals a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole signals a role outside the closed set.
	ErrInvalidRole = errors.New("role must be one of Issuer, Bookrunner, Investor")
	// ErrLenderRequired signals an investor registration without a lender.
	ErrLenderRequired = errors.New("investor accounts require a lenderId")
)
