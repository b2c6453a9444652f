package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/models"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/users", map[string]any{"email": "ana@x.io", "name": "Ana"})
	require.NoError(t, env.Deps.Users.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	u := decode[models.User](t, rec)
	assert.Equal(t, "ana@x.io", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEmpty(t, u.ID)

	_, c = env.doJSONRequest(http.MethodPost, "/users", map[string]any{"email": "ana@x.io"})
	he := requireHTTPError(t, env.Deps.Users.CreateUser(c), http.StatusConflict)
	assert.Equal(t, "User already exists", he.Message)
}

func TestCreateUser_ConflictBody(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("dup@x.io")

	rec := env.serve(http.MethodPost, "/users", map[string]any{"email": "dup@x.io"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
}

func TestGetRole(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("ana@x.io")

	rec, c := env.doJSONRequest(http.MethodGet, "/users-role/ana@x.io", nil)
	c.SetParamNames("email")
	c.SetParamValues("ana@x.io")
	require.NoError(t, env.Deps.Users.GetRole(c))
	assert.JSONEq(t, `{"role":"user"}`, rec.Body.String())

	rec = env.serve(http.MethodGet, "/users-role/nobody@x.io", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"user"}`, rec.Body.String())
}

func TestUpdateUserStatus(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("f@x.io")

	rec := env.serve(http.MethodPatch, "/users/f@x.io", map[string]any{"status": "fraud"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodGet, "/users/f@x.io", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UserStatusFraud, decode[models.User](t, rec).Status)

	rec = env.serve(http.MethodPatch, "/users/ghost@x.io", map[string]any{"status": "fraud"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.serve(http.MethodPatch, "/users/f@x.io", map[string]any{"status": "banned"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	for _, e := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		env.createUser(e)
	}

	rec := env.serve(http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.User](t, rec), 3)

	rec = env.serve(http.MethodGet, "/users?page=2&size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.User](t, rec), 1)
}
