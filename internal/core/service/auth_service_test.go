package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrDuplicateAccount
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindPending(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if !u.IsApproved {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindAllExcept(_ context.Context, excludeID string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.ID != excludeID {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateFields(_ context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.IsApproved != nil {
		u.IsApproved = *update.IsApproved
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenManager("secret", time.Hour)
	return NewAuthService(repo, tokens, nil, zerolog.Nop())
}

func register(t *testing.T, svc *AuthService, username, email, password, role string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
	return user
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user := register(t, svc, "alice", "a@x.com", "p1", domain.RoleStudent)

	if user.PasswordHash == "p1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("wrong")); err == nil {
		t.Fatalf("hash verified against wrong password")
	}
}

func TestAuthService_Register_DefaultsAndApproval(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user := register(t, svc, "alice", "a@x.com", "p1", "")
	if user.Role != domain.RoleStudent {
		t.Fatalf("expected default role student, got %s", user.Role)
	}
	if user.IsApproved {
		t.Fatalf("expected new student account to start unapproved")
	}

	instructor := register(t, svc, "bob", "b@x.com", "p2", domain.RoleInstructor)
	if instructor.IsApproved {
		t.Fatalf("expected new instructor account to start unapproved")
	}

	// admin bootstrap: auto-approved at registration
	admin := register(t, svc, "root", "root@x.com", "p3", domain.RoleAdmin)
	if !admin.IsApproved {
		t.Fatalf("expected admin-role registration to be auto-approved")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "mallory", Email: "m@x.com", Password: "p", Role: "superuser",
	})
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	register(t, svc, "alice", "a@x.com", "p1", "")

	// same username, different email
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "other@x.com", Password: "p",
	}); err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount for username, got %v", err)
	}

	// same email, different username
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice2", Email: "a@x.com", Password: "p",
	}); err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount for email, got %v", err)
	}
}

func TestAuthService_Login_ApprovalGate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	user := register(t, svc, "alice", "a@x.com", "p1", domain.RoleStudent)

	// correct credentials but unapproved: no token, distinct error
	if _, _, err := svc.Login(context.Background(), "alice", "p1"); err != domain.ErrPendingApproval {
		t.Fatalf("expected ErrPendingApproval, got %v", err)
	}

	approved := true
	if _, err := repo.UpdateFields(context.Background(), user.ID, domain.UserUpdate{IsApproved: &approved}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	token, got, err := svc.Login(context.Background(), "alice", "p1")
	if err != nil {
		t.Fatalf("login after approval failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token after approval")
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestAuthService_Login_ByEmailOrUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	user := register(t, svc, "carol", "c@x.com", "s3cret", domain.RoleAdmin)
	_ = user

	if _, _, err := svc.Login(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "c@x.com", "s3cret"); err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
}

func TestAuthService_Login_NoEnumerationLeak(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	register(t, svc, "root", "root@x.com", "goodpass", domain.RoleAdmin)

	// unknown identifier and wrong password return the identical error
	_, _, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, _, wrongErr := svc.Login(context.Background(), "root", "badpass")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown identifier, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
	err      error
}

func (s *stubThrottle) TooManyAttempts(context.Context, string) (bool, error) {
	return s.blocked, s.err
}
func (s *stubThrottle) RecordFailure(context.Context, string) error { s.failures++; return nil }
func (s *stubThrottle) Reset(context.Context, string) error         { s.resets++; return nil }

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{blocked: true}
	svc := NewAuthService(repo, NewTokenManager("secret", time.Hour), throttle, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "anyone", "p"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleBookkeeping(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := NewAuthService(repo, NewTokenManager("secret", time.Hour), throttle, zerolog.Nop())

	register(t, svc, "root", "root@x.com", "goodpass", domain.RoleAdmin)

	_, _, _ = svc.Login(context.Background(), "root", "badpass")
	if throttle.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", throttle.failures)
	}

	if _, _, err := svc.Login(context.Background(), "root", "goodpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset on success, got %d", throttle.resets)
	}
}

func TestAuthService_Login_ThrottleErrorDoesNotBlock(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{err: fmt.Errorf("redis down")}
	svc := NewAuthService(repo, NewTokenManager("secret", time.Hour), throttle, zerolog.Nop())

	register(t, svc, "root", "root@x.com", "goodpass", domain.RoleAdmin)

	if _, _, err := svc.Login(context.Background(), "root", "goodpass"); err != nil {
		t.Fatalf("expected throttle failure to be ignored, got %v", err)
	}
}

// Full lifecycle: register -> pending login rejected -> admin approves ->
// login succeeds -> account no longer listed as pending.
func TestAuthService_ApprovalLifecycle(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	admin := NewAdminService(repo, zerolog.Nop())

	alice := register(t, svc, "alice", "a@x.com", "p1", domain.RoleStudent)
	if alice.IsApproved {
		t.Fatalf("expected alice to start unapproved")
	}

	if _, _, err := svc.Login(context.Background(), "alice", "p1"); err != domain.ErrPendingApproval {
		t.Fatalf("expected ErrPendingApproval, got %v", err)
	}

	root := register(t, svc, "root", "root@x.com", "p2", domain.RoleAdmin)

	approved := true
	if _, err := admin.UpdateStatus(context.Background(), root.Identity(), alice.ID, domain.UserUpdate{IsApproved: &approved}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	token, _, err := svc.Login(context.Background(), "alice", "p1")
	if err != nil {
		t.Fatalf("login after approval failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	pending, err := admin.ListPending(context.Background())
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	for _, u := range pending {
		if u.ID == alice.ID {
			t.Fatalf("alice still listed as pending after approval")
		}
	}
}
