package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. The two cases are intentionally indistinguishable so login
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPendingApproval means the credentials were correct but the account
	// has not been activated by an administrator yet.
	ErrPendingApproval = errors.New("account pending approval")

	ErrDuplicateAccount = errors.New("username or email already taken")
	ErrInvalidRole      = errors.New("invalid role")
	ErrNoFieldsProvided = errors.New("no fields provided")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("access forbidden")
	ErrUserNotFound     = errors.New("user not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrTooManyAttempts  = errors.New("too many login attempts")
)
