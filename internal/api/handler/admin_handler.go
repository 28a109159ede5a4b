package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/api/metrics"
	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

type updateStatusRequest struct {
	IsApproved *bool   `json:"is_approved"`
	Role       *string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListPending returns all accounts awaiting approval.
//
// @Summary      List pending accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/pending [get]
func (h *AdminHandler) ListPending(c echo.Context) error {
	users, err := h.adminService.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountList(users))
}

// ListAll returns every account except the caller's own.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/all [get]
func (h *AdminHandler) ListAll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.adminService.ListAll(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountList(users))
}

// UpdateStatus partially updates an account's approval flag and/or role.
//
// @Summary      Update account status or role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Account id"
// @Param        body  body      updateStatusRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/{id} [put]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Code: codeValidation})
	}

	update := domain.UserUpdate{IsApproved: req.IsApproved, Role: req.Role}
	updated, err := h.adminService.UpdateStatus(c.Request().Context(), identity, c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFieldsProvided):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeNoFieldsProvided})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeInvalidRole})
		}
		return err
	}

	h.recordUpdate(update)
	return c.JSON(http.StatusOK, toAccountResponse(updated))
}

// DeleteAccount permanently removes an account.
//
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/{id} [delete]
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.adminService.DeleteAccount(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	metrics.ApprovalUpdatesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account removed"})
}

func (h *AdminHandler) recordUpdate(update domain.UserUpdate) {
	if update.IsApproved != nil {
		if *update.IsApproved {
			metrics.ApprovalUpdatesTotal.WithLabelValues("approve").Inc()
		} else {
			metrics.ApprovalUpdatesTotal.WithLabelValues("revoke").Inc()
		}
	}
	if update.Role != nil {
		metrics.ApprovalUpdatesTotal.WithLabelValues("role_change").Inc()
	}
}

func toAccountList(users []domain.User) []accountResponse {
	out := make([]accountResponse, 0, len(users))
	for i := range users {
		out = append(out, toAccountResponse(&users[i]))
	}
	return out
}
