package handler

import (
	"log/slog"

	"grocery/internal/delivery/api/response"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Register creates a BASIC account.
func (h *UserHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserResponse(user))
}

// List returns every account with its profile.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(users, newUserResponse))
}

// Get returns one account by email.
func (h *UserHandler) Get(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponse(user))
}

// UpdatePassword replaces the password and ends the account's session.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdatePassword(c.Request().Context(), p, email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponse(user))
}

// Delete removes an account and returns it.
func (h *UserHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Delete(c.Request().Context(), p, email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponse(user))
}

// CreateProfile stores the profile and promotes the account to VERIFIED.
func (h *UserHandler) CreateProfile(c echo.Context) error {
	return h.writeProfile(c, true)
}

// UpdateProfile changes the supplied profile fields only.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	return h.writeProfile(c, false)
}

func (h *UserHandler) writeProfile(c echo.Context, create bool) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input, err := req.toInput()
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "dob must be formatted as YYYY-MM-DD")
	}

	ctx := c.Request().Context()
	if create {
		user, err := h.uc.CreateProfile(ctx, p, email, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Created(c, newUserResponse(user))
	}

	user, err := h.uc.UpdateProfile(ctx, p, email, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserResponse(user))
}
