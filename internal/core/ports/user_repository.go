package ports

import (
	"context"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// UserRepository defines the persistence interface for accounts. Uniqueness
// of username and email is enforced by the store (unique indexes); a
// violation surfaces as domain.ErrDuplicateAccount.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByIdentifier resolves a login identifier against both the username
	// and the email field (logical OR).
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindPending(ctx context.Context) ([]domain.User, error)
	// FindAllExcept lists every account except the one with excludeID.
	FindAllExcept(ctx context.Context, excludeID string) ([]domain.User, error)
	// UpdateFields applies a partial update atomically and returns the
	// updated document. Fields not present in the update are left untouched.
	UpdateFields(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
