package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/transport"
)

type fakeIndex struct {
	docs    map[string]models.Meal
	failing bool
}

func (f *fakeIndex) IndexMeal(_ context.Context, m *models.Meal) error {
	if f.failing {
		return errors.New("index down")
	}
	f.docs[m.ID] = *m
	return nil
}

func (f *fakeIndex) DeleteMeal(_ context.Context, id string) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) SearchMeals(_ context.Context, query string, _, _ int) (int64, []models.Meal, error) {
	if f.failing {
		return 0, nil, errors.New("index down")
	}
	var out []models.Meal
	for _, m := range f.docs {
		out = append(out, m)
	}
	return int64(len(out)), out, nil
}

func TestMealService_CreatePatchDelete(t *testing.T) {
	events, pub := newTestEvents()
	ix := &fakeIndex{docs: map[string]models.Meal{}}
	svc := &MealService{Repo: newTestStore(t), Index: ix, Events: events}
	ctx := context.Background()

	m, err := svc.Create(ctx, transport.CreateMealRequest{MealName: "Dal", Price: 5, UserEmail: "c@x.io"})
	require.NoError(t, err)
	assert.Contains(t, ix.docs, m.ID)

	var patch transport.PatchMealRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":"12.50","ingredients":["lentils"]}`), &patch))
	got, err := svc.Patch(ctx, m.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.Price)
	assert.Equal(t, 12.5, ix.docs[m.ID].Price)

	stored, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, stored.Price)
	assert.Equal(t, []string{"lentils"}, stored.Ingredients)

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.NotContains(t, ix.docs, m.ID)
	require.ErrorIs(t, svc.Delete(ctx, m.ID), ErrNotFound)

	assert.Equal(t, []string{"meal_created", "meal_updated", "meal_deleted"}, pub.types(mykafka.TopicMeals))
}

func TestMealService_Validation(t *testing.T) {
	svc := &MealService{Repo: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.CreateMealRequest{UserEmail: "c@x.io"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateMealRequest{MealName: "x", UserEmail: "c@x.io", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	neg := models.Amount(-2)
	_, err = svc.Patch(ctx, uuid.NewString(), transport.PatchMealRequest{Price: &neg})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Get(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMealService_SearchFallsBackToStore(t *testing.T) {
	ix := &fakeIndex{docs: map[string]models.Meal{}, failing: true}
	svc := &MealService{Repo: newTestStore(t), Index: ix}
	ctx := context.Background()

	for _, name := range []string{"Chicken Biryani", "Veg Khichuri"} {
		_, err := svc.Create(ctx, transport.CreateMealRequest{MealName: name, Price: 8, UserEmail: "c@x.io"})
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, "biryani")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Chicken Biryani", found[0].MealName)

	_, err = svc.Search(ctx, "  ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestMealService_ListAndByEmail(t *testing.T) {
	svc := &MealService{Repo: newTestStore(t)}
	ctx := context.Background()

	for i, email := range []string{"a@x.io", "a@x.io", "b@x.io"} {
		_, err := svc.Create(ctx, transport.CreateMealRequest{MealName: "m", Price: models.Amount(i + 1), UserEmail: email})
		require.NoError(t, err)
	}

	total, meals, err := svc.List(ctx, transport.MealQuery{Sort: transport.SortPriceDesc, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, meals, 2)
	assert.Equal(t, 3.0, meals[0].Price)

	mine, err := svc.ListByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
