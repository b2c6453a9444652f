package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/service"
	"github.com/localchefbazaar/backend/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) ListMealReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.list_meal")

	reviews, err := h.Svc.ListForMeal(ctx, c.QueryParam("mealId"))
	if err != nil {
		l.Error("list_reviews_error", "status", 500, "reason", "cannot read reviews", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) ListAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.list_all")

	reviews, err := h.Svc.ListAll(ctx)
	if err != nil {
		l.Error("list_reviews_error", "status", 500, "reason", "cannot read reviews", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) ListMine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.list_mine")

	reviews, err := h.Svc.ListByEmail(ctx, c.Param("userEmail"))
	if err != nil {
		l.Error("list_my_reviews_error", "status", 500, "reason", "cannot read reviews", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.create")

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rv, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_review_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_review_error", "status", 500, "reason", "cannot save review", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save review")
	}

	l.Info("create_review_success", "review_id", rv.ID)
	return c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHTTP) PatchReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.patch")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("patch_review_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_review_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rv, err := h.Svc.Patch(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("patch_review_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("patch_review_error", "status", 404, "reason", "review not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Review not found")
		}
		l.Error("patch_review_error", "status", 500, "reason", "cannot update review", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update review")
	}

	l.Info("patch_review_success", "review_id", id)
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.delete")

	id, err := idParam(c, "id")
	if err != nil {
		l.Warn("delete_review_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_review_error", "status", 404, "reason", "review not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Review not found")
		}
		l.Error("delete_review_error", "status", 500, "reason", "cannot delete review", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete review")
	}

	l.Info("delete_review_success", "review_id", id)
	return c.NoContent(http.StatusNoContent)
}
