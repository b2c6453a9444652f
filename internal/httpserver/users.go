package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
	"github.com/localchefbazaar/backend/internal/transport"
	"github.com/localchefbazaar/backend/internal/util"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.list")

	offset, limit := 0, 0
	if c.QueryParam("page") != "" {
		offset, limit = util.Calculate(
			util.ParseIntDefault(c.QueryParam("page"), 1),
			util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize),
		)
	}

	users, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		l.Error("list_users_error", "status", 500, "reason", "cannot read users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.get")

	u, err := h.Svc.Get(ctx, c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_user_error", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("get_user_error", "status", 500, "reason", "cannot read user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read user")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHTTP) GetRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.get_role")

	role, err := h.Svc.Role(ctx, c.Param("email"))
	if err != nil {
		l.Error("get_role_error", "status", 500, "reason", "cannot read user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read user")
	}
	return c.JSON(http.StatusOK, map[string]any{"role": role})
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	u, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_user_error", "status", 409, "reason", "user already exists", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "User already exists")
		}
		l.Error("create_user_error", "status", 500, "reason", "cannot save user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save user")
	}

	l.Info("create_user_success", "user_id", u.ID)
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.update_status")

	var req transport.UpdateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	email := c.Param("email")
	if err := h.Svc.UpdateStatus(ctx, email, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_user_status_error", "status", 400, "reason", "invalid status", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_user_status_error", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("update_user_status_error", "status", 500, "reason", "cannot update user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update user")
	}

	l.Info("update_user_status_success", "email", email)
	return c.JSON(http.StatusOK, map[string]any{"email": email, "status": req.Status})
}
