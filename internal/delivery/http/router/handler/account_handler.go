// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stundenplan/internal/delivery/http/response"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/usecase"
)

// AccountHandler holds dependencies for login and account lifecycle handlers.
type AccountHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(authUC usecase.AuthUsecase, accountUC usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		authUC:    authUC,
		accountUC: accountUC,
		logger:    logger,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login handles the login request. The response body is the bare token on
// success and an empty string when the credentials do not check out; the
// status is 200 either way.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	// Older frontends send the credentials as query parameters.
	if req.Username == "" {
		req.Username = c.QueryParam("username")
		req.Password = c.QueryParam("password")
	}

	token, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, token)
}

// Register handles the registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	outcome, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "User successfully created!"
	if outcome == usecase.RegisterOutcomePending {
		message = "User created, but needs to be activated!"
	}

	return response.Text(c, http.StatusOK, message)
}

// Confirm handles the email confirmation callback. Username and key arrive
// as form fields or query parameters.
func (h *AccountHandler) Confirm(c echo.Context) error {
	username := c.FormValue("username")
	key := c.FormValue("key")
	if username == "" {
		username = c.QueryParam("username")
		key = c.QueryParam("key")
	}

	if err := h.accountUC.Confirm(c.Request().Context(), username, key); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "User confirmation successful!")
}

type changePasswordRequest struct {
	Password string `json:"password" form:"password"`
}

// ChangePassword replaces the password of the student named in the route.
// Ownership is enforced by the route middleware.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if req.Password == "" {
		return domainerrors.ErrValidationFailed
	}

	username := c.Param("benutzername")
	if err := h.accountUC.ChangePassword(c.Request().Context(), username, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "Password changed!")
}

// Delete removes the student account named in the route.
func (h *AccountHandler) Delete(c echo.Context) error {
	username := c.Param("benutzername")
	if err := h.accountUC.Delete(c.Request().Context(), username); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "User deleted!")
}
