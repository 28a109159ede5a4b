package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

// LoginThrottle counts failed login attempts per identifier. A nil throttle
// disables throttling entirely.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// AuthService implements registration and login.
//
// Known trust gap, preserved deliberately: the role field at registration is
// client-supplied and an admin-role registration is auto-approved. This is
// the first-admin bootstrap path; deployments that need to close it should
// restrict access to the register endpoint instead.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *TokenManager
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenManager, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   role == domain.RoleAdmin,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).
		Bool("is_approved", created.IsApproved).Msg("account registered")

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if blocked := s.throttled(ctx, identifier); blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure shape as a wrong password: no enumeration leak.
			s.recordFailure(ctx, identifier)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, identifier)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsApproved {
		return "", nil, domain.ErrPendingApproval
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, identifier); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")

	return token, user, nil
}

// throttled checks the failure counter. A throttle backend error never blocks
// a login; it is logged and treated as a miss.
func (s *AuthService) throttled(ctx context.Context, identifier string) bool {
	if s.throttle == nil {
		return false
	}
	blocked, err := s.throttle.TooManyAttempts(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		return false
	}
	return blocked
}

func (s *AuthService) recordFailure(ctx context.Context, identifier string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, identifier); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
