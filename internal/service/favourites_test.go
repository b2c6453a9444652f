package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/transport"
)

func TestFavouriteService_DuplicateRejected(t *testing.T) {
	svc := &FavouriteService{Repo: newTestStore(t)}
	ctx := context.Background()

	req := transport.CreateFavouriteRequest{UserEmail: "a@x.io", MealID: "m1", MealName: "Dal", Price: 5}
	f, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, transport.CreateFavouriteRequest{UserEmail: "b@x.io", MealID: "m1"})
	require.NoError(t, err)

	favs, err := svc.List(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	require.NoError(t, svc.Delete(ctx, f.ID))
	require.ErrorIs(t, svc.Delete(ctx, f.ID), ErrNotFound)

	_, err = svc.Create(ctx, req)
	require.NoError(t, err)
}
