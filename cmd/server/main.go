package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/localchefbazaar/backend/internal/config"
	"github.com/localchefbazaar/backend/internal/db"
	"github.com/localchefbazaar/backend/internal/es"
	"github.com/localchefbazaar/backend/internal/httpserver"
	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/metrics"
	appmw "github.com/localchefbazaar/backend/internal/middleware"
	"github.com/localchefbazaar/backend/internal/mongorepo"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/payment"
	"github.com/localchefbazaar/backend/internal/repo"
	"github.com/localchefbazaar/backend/internal/service"
)

var _ service.Store = (*mongorepo.MongoRepo)(nil)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := openStore(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var pub mykafka.Publisher = mykafka.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		prod, err := mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
		pub = prod
	} else {
		logger.Info("kafka_disabled", "reason", "KAFKA_BROKERS not set")
	}

	m := metrics.New()
	events := &service.Events{Pub: pub, Metrics: m}

	meals := &service.MealService{Repo: store, Events: events}
	if cfg.ESURL != "" {
		client, err := es.NewClient(es.Config{URL: cfg.ESURL, Username: cfg.ESUser, Password: cfg.ESPassword})
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		meals.Index = es.NewMealIndex(client)
	} else {
		logger.Info("search_index_disabled", "reason", "ES_URL not set")
	}

	payments := &service.PaymentService{
		Repo:       store,
		Processor:  payment.NewStripeProcessor(cfg.StripeSecretKey),
		Currency:   cfg.StripeCurrency,
		SiteDomain: cfg.SiteDomain,
		Events:     events,
		Metrics:    m,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(appmw.Common(logger, m, cfg.ClientOrigins)...)

	httpserver.Register(e, &httpserver.Deps{
		Health:     &httpserver.HealthHTTP{Store: store},
		Users:      &httpserver.UserHTTP{Svc: &service.UserService{Repo: store, Events: events}},
		Requests:   &httpserver.RoleRequestHTTP{Svc: &service.RoleRequestService{Repo: store, Users: store, Events: events, Metrics: m}},
		Meals:      &httpserver.MealHTTP{Svc: meals},
		Orders:     &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: store, Events: events}},
		Payments:   &httpserver.PaymentHTTP{Svc: payments},
		Admin:      &httpserver.AdminHTTP{Svc: &service.AdminService{Payments: store, Orders: store}},
		Reviews:    &httpserver.ReviewHTTP{Svc: &service.ReviewService{Repo: store}},
		Favourites: &httpserver.FavouriteHTTP{Svc: &service.FavouriteService{Repo: store}},
		Metrics:    m.Handler(logger),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logger.Info("server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if err := closeStore(ctx); err != nil {
		logger.Error("store_close_error", "error", err)
	}
	if err := pub.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}

	logger.Info("server_stopped")
}

// openStore connects the backend named by DATABASE_URL and returns it with
// its close function.
func openStore(ctx context.Context, cfg config.Config) (service.Store, func(context.Context) error, error) {
	kind, err := db.KindOf(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if kind == db.KindMongo {
		client, mdb, err := db.OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, nil, err
		}
		store := &mongorepo.MongoRepo{DB: mdb}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		slog.Info("store_connected", "kind", kind.String(), "database", cfg.DatabaseName)
		return store, client.Disconnect, nil
	}

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("store_connected", "kind", kind.String())
	return &repo.GormRepo{DB: gdb}, func(context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}, nil
}
