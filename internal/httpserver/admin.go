package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) TotalPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.total_payment")

	total, err := h.Svc.TotalPayment(ctx)
	if err != nil {
		l.Error("total_payment_error", "status", 500, "reason", "cannot sum payments", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sum payments")
	}
	return c.JSON(http.StatusOK, map[string]any{"totalPayment": total})
}

func (h *AdminHTTP) OrderStatusCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.order_status_count")

	counts, err := h.Svc.OrderStatusCount(ctx)
	if err != nil {
		l.Error("order_status_count_error", "status", 500, "reason", "cannot count orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count orders")
	}
	return c.JSON(http.StatusOK, counts)
}
