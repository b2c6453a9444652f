package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	"github.com/localchefbazaar/backend/internal/metrics"
	loggingmw "github.com/localchefbazaar/backend/internal/middleware/logging"
)

// Common is the chain every route runs through. Request ids are assigned
// before the logger and metrics see the request.
func Common(log *slog.Logger, m *metrics.Metrics, origins []string) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		ecM.Recover(),
		ecM.RequestID(),
		m.Middleware(),
		loggingmw.RequestLogger(log),
		ecM.CORSWithConfig(ecM.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		}),
		ecM.Secure(),
	}
}
