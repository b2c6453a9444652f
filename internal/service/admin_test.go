package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/transport"
)

func TestAdminService_Aggregates(t *testing.T) {
	env := newPaymentEnv(t)
	admin := &AdminService{Payments: env.store, Orders: env.store}
	ctx := context.Background()

	total, err := admin.TotalPayment(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	counts, err := admin.OrderStatusCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCount{}, counts)

	a, b := env.order(t), env.order(t)
	env.order(t)
	env.proc.addPaid("cs_a", "pi_a", a.ID, 1000)
	env.proc.addPaid("cs_b", "pi_b", b.ID, 250)
	for _, id := range []string{"cs_a", "cs_b", "cs_b"} {
		_, err := env.svc.Confirm(ctx, id)
		require.NoError(t, err)
	}

	_, err = env.orders.UpdateStatus(ctx, a.ID, "delivered")
	require.NoError(t, err)
	_, err = env.orders.UpdateStatus(ctx, b.ID, "cancelled")
	require.NoError(t, err)

	total, err = admin.TotalPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, total)

	counts, err = admin.OrderStatusCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCount{Pending: 1, Delivered: 1}, counts)

	_, err = env.orders.Create(ctx, transport.CreateOrderRequest{MealID: "m2", UserEmail: "z@x.io"})
	require.NoError(t, err)
	counts, err = admin.OrderStatusCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts.Pending)
}
