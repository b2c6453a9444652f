package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
	"github.com/localchefbazaar/backend/internal/transport"
)

type RoleRequestHTTP struct {
	Svc *service.RoleRequestService
}

func (h *RoleRequestHTTP) ListPending(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "requests.list")

	reqs, err := h.Svc.ListPending(ctx)
	if err != nil {
		l.Error("list_requests_error", "status", 500, "reason", "cannot read requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read requests")
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *RoleRequestHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "requests.submit")

	var req transport.CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("submit_request_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, rr, err := h.Svc.Submit(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("submit_request_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("submit_request_error", "status", 500, "reason", "cannot save request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save request")
	}
	if !created {
		l.Info("submit_request_duplicate", "email", req.UserEmail, "request_type", req.RequestType)
		return c.JSON(http.StatusOK, map[string]any{"message": "already requested"})
	}

	l.Info("submit_request_success", "request_id", rr.ID)
	return c.JSON(http.StatusCreated, rr)
}

func (h *RoleRequestHTTP) Resolve(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "requests.resolve")

	var req transport.ResolveRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("resolve_request_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	email := c.Param("userEmail")
	res, err := h.Svc.Resolve(ctx, email, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("resolve_request_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			l.Warn("resolve_request_error", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrRequestNotUpdated):
			l.Warn("resolve_request_error", "status", 404, "reason", "no pending request", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Request status not updated")
		}
		l.Error("resolve_request_error", "status", 500, "reason", "cannot update request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update request")
	}

	body := map[string]any{
		"success":       true,
		"requestStatus": res.Status,
		"requestType":   res.Role,
		"message":       "Request " + string(res.Status),
	}
	if res.AlreadyResolved {
		body["message"] = "already resolved"
	}
	if res.ChefID != "" {
		body["chefId"] = res.ChefID
	}

	l.Info("resolve_request_success", "email", email, "request_status", res.Status, "noop", res.AlreadyResolved)
	return c.JSON(http.StatusOK, body)
}

func (h *RoleRequestHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "requests.delete")

	email := c.Param("userEmail")
	n, err := h.Svc.Delete(ctx, email, c.QueryParam("requestType"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("delete_requests_error", "status", 400, "reason", "invalid requestType", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("delete_requests_error", "status", 500, "reason", "cannot delete requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete requests")
	}

	l.Info("delete_requests_success", "email", email, "deleted", n)
	return c.JSON(http.StatusOK, map[string]any{"deletedCount": n})
}
