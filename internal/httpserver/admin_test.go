package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAggregates(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/admin/total-payment", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalPayment":0}`, rec.Body.String())

	a := env.createOrder("a@x.io", 10)
	env.createOrder("b@x.io", 5)
	c := env.createOrder("c@x.io", 5)

	rec = env.serve(http.MethodPatch, "/orders/"+a.ID, map[string]any{"orderStatus": "delivered"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.serve(http.MethodPatch, "/orders/"+c.ID, map[string]any{"orderStatus": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodGet, "/admin-order-status-count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pending":1,"delivered":1}`, rec.Body.String())
}
