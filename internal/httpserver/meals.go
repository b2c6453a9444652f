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

type MealHTTP struct {
	Svc *service.MealService
}

// ListMeals returns a bare array unless ?page is given, in which case the
// page comes wrapped with its pagination meta.
func (h *MealHTTP) ListMeals(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.list")

	q := transport.MealQuery{Sort: c.QueryParam("sort")}
	switch q.Sort {
	case "", transport.SortPriceAsc, transport.SortPriceDesc:
	default:
		l.Warn("list_meals_error", "status", 400, "reason", "unknown sort", "sort", q.Sort)
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be price_asc or price_desc")
	}

	paged := c.QueryParam("page") != ""
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	if paged {
		q.Offset, q.Limit = util.Calculate(page, util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize))
	}

	total, meals, err := h.Svc.List(ctx, q)
	if err != nil {
		l.Error("list_meals_error", "status", 500, "reason", "cannot read meals", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read meals")
	}

	if !paged {
		return c.JSON(http.StatusOK, meals)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data": meals,
		"meta": util.Meta(page, q.Offset, q.Limit, total),
	})
}

func (h *MealHTTP) SearchMeals(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.search")

	meals, err := h.Svc.Search(ctx, c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("search_meals_error", "status", 400, "reason", "empty query", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "q required")
		}
		l.Error("search_meals_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, meals)
}

func (h *MealHTTP) GetMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.get")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("get_meal_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	m, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_meal_error", "status", 404, "reason", "meal not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Meal not found")
		}
		l.Error("get_meal_error", "status", 500, "reason", "cannot read meal", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read meal")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MealHTTP) ListMyMeals(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.list_mine")

	meals, err := h.Svc.ListByEmail(ctx, c.Param("userEmail"))
	if err != nil {
		l.Error("list_my_meals_error", "status", 500, "reason", "cannot read meals", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read meals")
	}
	return c.JSON(http.StatusOK, meals)
}

func (h *MealHTTP) CreateMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.create")

	var req transport.CreateMealRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_meal_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	m, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_meal_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_meal_error", "status", 500, "reason", "cannot save meal", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save meal")
	}

	l.Info("create_meal_success", "meal_id", m.ID)
	return c.JSON(http.StatusCreated, m)
}

func (h *MealHTTP) PatchMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.patch")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("patch_meal_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchMealRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_meal_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	m, err := h.Svc.Patch(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("patch_meal_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("patch_meal_error", "status", 404, "reason", "meal not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Meal not found")
		}
		l.Error("patch_meal_error", "status", 500, "reason", "cannot update meal", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update meal")
	}

	l.Info("patch_meal_success", "meal_id", id)
	return c.JSON(http.StatusOK, m)
}

func (h *MealHTTP) DeleteMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "meals.delete")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("delete_meal_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_meal_error", "status", 404, "reason", "meal not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Meal not found")
		}
		l.Error("delete_meal_error", "status", 500, "reason", "cannot delete meal", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete meal")
	}

	l.Info("delete_meal_success", "meal_id", id)
	return c.NoContent(http.StatusNoContent)
}
