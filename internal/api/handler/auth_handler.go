package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/api/metrics"
	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account. Non-admin accounts start unapproved and
// must be activated by an administrator before they can log in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Code: codeValidation})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeValidation})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateAccount):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeDuplicateAccount})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeInvalidRole})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid registration data", Code: codeValidation})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()

	msg := "Registration successful. Your account is pending administrator approval."
	if user.IsApproved {
		msg = "Registration successful."
	}
	return c.JSON(http.StatusCreated, registerResponse{Account: toAccountResponse(user), Message: msg})
}

// Login authenticates an identifier (username or email) and password and
// returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Code: codeValidation})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeValidation})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: codeInvalidCredentials})
		case errors.Is(err, domain.ErrPendingApproval):
			// Distinct structured failure so clients can render a dedicated
			// "pending" state instead of a generic login error.
			metrics.LoginsTotal.WithLabelValues("pending_approval").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: codePendingApproval, Hint: pendingHint})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error(), Code: codeTooManyAttempts})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	})
}
