package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/transport"
)

func TestOrderService_Create(t *testing.T) {
	events, pub := newTestEvents()
	svc := &OrderService{Repo: newTestStore(t), Events: events}
	ctx := context.Background()

	var req transport.CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"mealId":"m1","mealName":"Dal","price":"7.25","quantity":"2","chefId":"CHEF-AB12","userEmail":"a@x.io"}`), &req))

	o, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, o.OrderStatus)
	assert.Equal(t, 7.25, o.Price)
	assert.Equal(t, 2, o.Quantity)
	assert.False(t, o.OrderTime.IsZero())
	assert.Equal(t, []string{"order_created"}, pub.types(mykafka.TopicOrders))

	byChef, err := svc.ListByChef(ctx, "CHEF-AB12")
	require.NoError(t, err)
	assert.Len(t, byChef, 1)

	byEmail, err := svc.ListByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)
}

func TestOrderService_CreateValidation(t *testing.T) {
	svc := &OrderService{Repo: newTestStore(t)}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateOrderRequest
	}{
		{"missing meal", transport.CreateOrderRequest{UserEmail: "a@x.io"}},
		{"missing email", transport.CreateOrderRequest{MealID: "m1"}},
		{"negative price", transport.CreateOrderRequest{MealID: "m1", UserEmail: "a@x.io", Price: -1}},
		{"fractional quantity", transport.CreateOrderRequest{MealID: "m1", UserEmail: "a@x.io", Quantity: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc := &OrderService{Repo: newTestStore(t)}
	ctx := context.Background()

	o, err := svc.Create(ctx, transport.CreateOrderRequest{MealID: "m1", UserEmail: "a@x.io"})
	require.NoError(t, err)
	assert.Equal(t, 1, o.Quantity)

	got, err := svc.UpdateStatus(ctx, o.ID, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, models.OrderAccepted, got.OrderStatus)

	_, err = svc.UpdateStatus(ctx, o.ID, "shipped")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, uuid.NewString(), "delivered")
	require.ErrorIs(t, err, ErrNotFound)
}
