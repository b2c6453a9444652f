package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/db"
	"github.com/localchefbazaar/backend/internal/metrics"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/payment"
	"github.com/localchefbazaar/backend/internal/repo"
	"github.com/localchefbazaar/backend/internal/service"
)

type stubProcessor struct {
	sessions map[string]*payment.CheckoutSession
}

func (p *stubProcessor) CreateCheckoutSession(_ context.Context, cp payment.CheckoutParams) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{ID: "cs_new", URL: "https://checkout.example.com/cs_new?order=" + cp.OrderID}, nil
}

func (p *stubProcessor) GetCheckoutSession(_ context.Context, id string) (*payment.CheckoutSession, error) {
	if s, ok := p.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("no such session")
}

type testEnv struct {
	T     *testing.T
	E     *echo.Echo
	Store *repo.GormRepo
	Proc  *stubProcessor
	Deps  *Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.Open(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store := &repo.GormRepo{DB: gdb}
	proc := &stubProcessor{sessions: map[string]*payment.CheckoutSession{}}
	m := metrics.New()
	events := &service.Events{Pub: mykafka.Nop{}, Metrics: m}

	deps := &Deps{
		Health:   &HealthHTTP{Store: store},
		Users:    &UserHTTP{Svc: &service.UserService{Repo: store, Events: events}},
		Requests: &RoleRequestHTTP{Svc: &service.RoleRequestService{Repo: store, Users: store, Events: events, Metrics: m}},
		Meals:    &MealHTTP{Svc: &service.MealService{Repo: store, Events: events}},
		Orders:   &OrderHTTP{Svc: &service.OrderService{Repo: store, Events: events}},
		Payments: &PaymentHTTP{Svc: &service.PaymentService{
			Repo: store, Processor: proc, Currency: "usd", SiteDomain: "http://localhost:5173", Events: events, Metrics: m,
		}},
		Admin:      &AdminHTTP{Svc: &service.AdminService{Payments: store, Orders: store}},
		Reviews:    &ReviewHTTP{Svc: &service.ReviewService{Repo: store}},
		Favourites: &FavouriteHTTP{Svc: &service.FavouriteService{Repo: store}},
		Metrics:    m.Handler(nil),
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, Store: store, Proc: proc, Deps: deps}
}

// doJSONRequest builds a context for calling a handler directly.
func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// serve runs a request through the router, error handler included.
func (env *testEnv) serve(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()
	rec, c := env.doJSONRequest(method, path, body)
	env.E.ServeHTTP(rec, c.Request())
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
	return he
}

func (env *testEnv) createUser(email string) {
	env.T.Helper()
	rec := env.serve(http.MethodPost, "/users", map[string]any{"email": email, "name": "Test"})
	require.Equal(env.T, http.StatusCreated, rec.Code)
}
