package ports

import (
	"context"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// AdminService manages the account approval lifecycle. All operations are
// invoked by an admin identity; the caller is passed explicitly so the
// admin-lockout guard (an admin may edit or delete only their own admin
// record, never another admin's) can be enforced.
type AdminService interface {
	ListPending(ctx context.Context) ([]domain.User, error)
	ListAll(ctx context.Context, callerID string) ([]domain.User, error)
	UpdateStatus(ctx context.Context, caller domain.Identity, targetID string, update domain.UserUpdate) (*domain.User, error)
	DeleteAccount(ctx context.Context, caller domain.Identity, targetID string) error
}
