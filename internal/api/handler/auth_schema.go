package handler

import (
	"time"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Code is a stable machine-readable kind; Hint, when present,
// tells a client which dedicated UI state to render.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

const (
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codePendingApproval    = "ACCOUNT_PENDING_APPROVAL"
	codeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	codeInvalidRole        = "INVALID_ROLE"
	codeNoFieldsProvided   = "NO_FIELDS_PROVIDED"
	codeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
	codeValidation         = "VALIDATION_ERROR"

	pendingHint = "Your account is awaiting administrator approval. Try again once it has been activated."
)

// --- Request types ---

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email"    validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	// Role is validated by the service so an unknown value maps to
	// INVALID_ROLE rather than a generic validation failure.
	Role string `json:"role"`
}

type loginRequest struct {
	// Identifier is a username or an email.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// --- Response types ---

// accountResponse is the public projection of an account. The password hash
// never appears here.
type accountResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type registerResponse struct {
	Account accountResponse `json:"account"`
	Message string          `json:"message"`
}

type loginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

func toAccountResponse(u *domain.User) accountResponse {
	return accountResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
