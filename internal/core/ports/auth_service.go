package ports

import (
	"context"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role defaults
// to student when empty.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

type AuthService interface {
	// Register creates an account. Non-admin registrations start unapproved;
	// no token is issued on registration.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login resolves identifier (username or email) and password to a signed
	// token and the account. Unknown identifier and wrong password both
	// return domain.ErrInvalidCredentials; a correct password on an
	// unapproved account returns domain.ErrPendingApproval.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
