package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
	"github.com/localchefbazaar/backend/internal/transport"
)

type FavouriteHTTP struct {
	Svc *service.FavouriteService
}

func (h *FavouriteHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favourites.list")

	favs, err := h.Svc.List(ctx, c.Param("userEmail"))
	if err != nil {
		l.Error("list_favourites_error", "status", 500, "reason", "cannot read favourites", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read favourites")
	}
	return c.JSON(http.StatusOK, favs)
}

func (h *FavouriteHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favourites.create")

	var req transport.CreateFavouriteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_favourite_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	f, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_favourite_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_favourite_error", "status", 400, "reason", "already saved", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Already exists")
		}
		l.Error("create_favourite_error", "status", 500, "reason", "cannot save favourite", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save favourite")
	}

	l.Info("create_favourite_success", "favourite_id", f.ID)
	return c.JSON(http.StatusCreated, f)
}

func (h *FavouriteHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favourites.delete")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("delete_favourite_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_favourite_error", "status", 404, "reason", "favourite not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Favourite not found")
		}
		l.Error("delete_favourite_error", "status", 500, "reason", "cannot delete favourite", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete favourite")
	}

	l.Info("delete_favourite_success", "favourite_id", id)
	return c.NoContent(http.StatusNoContent)
}
