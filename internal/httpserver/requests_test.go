package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/models"
)

func TestRoleRequestFlow(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("chef@x.io")

	rec := env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "chef@x.io", "userName": "Rina", "requestType": "chef"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "chef@x.io", "requestType": "chef"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"already requested"}`, rec.Body.String())

	rec = env.serve(http.MethodGet, "/users-request", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.RoleRequest](t, rec), 1)

	rec = env.serve(http.MethodPatch, "/users-request/chef@x.io", map[string]any{"requestStatus": "approved", "requestType": "chef"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Regexp(t, `^CHEF-[A-Z0-9]{4}$`, body["chefId"])

	rec = env.serve(http.MethodGet, "/users/chef@x.io", nil)
	u := decode[models.User](t, rec)
	assert.Equal(t, models.RoleChef, u.Role)
	assert.Equal(t, body["chefId"], u.ChefID)

	rec = env.serve(http.MethodPatch, "/users-request/chef@x.io", map[string]any{"requestStatus": "approved", "requestType": "chef"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already resolved", decode[map[string]any](t, rec)["message"])
}

func TestResolveRequest_Errors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "ghost@x.io", "requestType": "admin"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.serve(http.MethodPatch, "/users-request/ghost@x.io", map[string]any{"requestStatus": "approved", "requestType": "admin"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())

	env.createUser("plain@x.io")
	rec = env.serve(http.MethodPatch, "/users-request/plain@x.io", map[string]any{"requestStatus": "rejected", "requestType": "chef"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Request status not updated"}`, rec.Body.String())

	rec = env.serve(http.MethodPatch, "/users-request/plain@x.io", map[string]any{"requestStatus": "maybe", "requestType": "chef"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "plain@x.io", "requestType": "overlord"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectRequest_LeavesRole(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("r@x.io")

	rec := env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "r@x.io", "requestType": "chef"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.serve(http.MethodPatch, "/users-request/r@x.io", map[string]any{"requestStatus": "rejected", "requestType": "chef"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodGet, "/users-role/r@x.io", nil)
	assert.JSONEq(t, `{"role":"user"}`, rec.Body.String())
}

func TestDeleteRequests(t *testing.T) {
	env := newTestEnv(t)
	for _, typ := range []string{"chef", "admin"} {
		rec := env.serve(http.MethodPost, "/users-request", map[string]any{"userEmail": "d@x.io", "requestType": typ})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.serve(http.MethodDelete, "/users-request/d@x.io?requestType=chef", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())

	rec = env.serve(http.MethodDelete, "/users-request/d@x.io", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
}
