package usecases

import "errors"

// Sentinel errors shared by the use cases. Handlers translate these into HTTP
// statuses; everything else surfaces as a 500.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrEmailTaken     = errors.New("email is already in use")
	ErrBadCredentials = errors.New("invalid username or password")
)
