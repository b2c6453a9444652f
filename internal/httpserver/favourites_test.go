package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/models"
)

func TestFavourites(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]any{"userEmail": "a@x.io", "mealId": "meal-1", "mealName": "Dal", "chefName": "Rina", "price": "5.5"}

	rec := env.serve(http.MethodPost, "/favourites", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	f := decode[models.Favourite](t, rec)
	assert.Equal(t, 5.5, f.Price)

	rec = env.serve(http.MethodPost, "/favourites", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Already exists"}`, rec.Body.String())

	rec = env.serve(http.MethodGet, "/favourites/a@x.io", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Favourite](t, rec), 1)

	rec = env.serve(http.MethodDelete, "/favourites/"+f.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.serve(http.MethodGet, "/favourites/a@x.io", nil)
	assert.Empty(t, decode[[]models.Favourite](t, rec))
}
