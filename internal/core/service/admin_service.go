package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

// AdminService implements the account approval lifecycle: listing pending
// accounts, flipping the approval flag, changing roles, and deleting
// accounts. The admin-lockout guard prevents one admin from modifying or
// deleting another admin's account.
type AdminService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewAdminService(repo ports.UserRepository, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

func (s *AdminService) ListPending(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindPending(ctx)
}

func (s *AdminService) ListAll(ctx context.Context, callerID string) ([]domain.User, error) {
	return s.repo.FindAllExcept(ctx, callerID)
}

func (s *AdminService) UpdateStatus(ctx context.Context, caller domain.Identity, targetID string, update domain.UserUpdate) (*domain.User, error) {
	if update.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == domain.RoleAdmin && caller.ID != target.ID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateFields(ctx, targetID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", caller.ID).Str("target_id", targetID).
		Bool("was_approved", target.IsApproved).Bool("is_approved", updated.IsApproved).
		Str("role", updated.Role).Msg("account status updated")

	return updated, nil
}

func (s *AdminService) DeleteAccount(ctx context.Context, caller domain.Identity, targetID string) error {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin && caller.ID != target.ID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.log.Info().Str("admin_id", caller.ID).Str("target_id", targetID).Msg("account deleted")
	return nil
}
