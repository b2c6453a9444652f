package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
	"github.com/localchefbazaar/backend/internal/transport"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) CreateCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments.create_checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_checkout_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	url, err := h.Svc.CreateCheckout(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_checkout_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_checkout_error", "status", 500, "reason", "payment processor failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create checkout session")
	}

	l.Info("create_checkout_success", "order_id", req.OrderID)
	return c.JSON(http.StatusOK, map[string]any{"url": url})
}

func (h *PaymentHTTP) Confirm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments.confirm")

	res, err := h.Svc.Confirm(ctx, c.QueryParam("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("confirm_payment_error", "status", 400, "reason", "missing session_id", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "session_id required")
		}
		l.Error("confirm_payment_error", "status", 500, "reason", "cannot confirm payment", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot confirm payment")
	}

	switch {
	case !res.Success:
		l.Info("confirm_payment_unpaid", "transaction_id", res.TransactionID)
		return c.JSON(http.StatusOK, map[string]any{"success": false})
	case res.AlreadyProcessed:
		l.Info("confirm_payment_duplicate", "transaction_id", res.TransactionID)
		return c.JSON(http.StatusOK, map[string]any{
			"success":       true,
			"transactionId": res.TransactionID,
			"message":       "already processed",
		})
	}

	l.Info("confirm_payment_success", "transaction_id", res.TransactionID, "matched", res.MatchedCount)
	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"transactionId": res.TransactionID,
		"modifyOrder":   map[string]any{"matchedCount": res.MatchedCount},
		"paymentInfo":   res.Payment,
	})
}
