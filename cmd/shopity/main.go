package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/shopity/docs"
	"github.com/aaravmahajanofficial/shopity/internal/api"
	"github.com/aaravmahajanofficial/shopity/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopity/internal/config"
	"github.com/aaravmahajanofficial/shopity/internal/health"
	"github.com/aaravmahajanofficial/shopity/internal/metrics"
	"github.com/aaravmahajanofficial/shopity/internal/notify"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
	"github.com/aaravmahajanofficial/shopity/internal/storage/memory"
	"github.com/aaravmahajanofficial/shopity/internal/storage/postgres"
	redisstore "github.com/aaravmahajanofficial/shopity/internal/storage/redis"
	"github.com/aaravmahajanofficial/shopity/internal/tracing"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
	"github.com/aaravmahajanofficial/shopity/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	tp, err := tracing.Setup(context.Background(), &cfg.Tracing)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage setup
	store, err := openStore(cfg)
	if err != nil {
		slog.Error("❌ Error opening storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	feed := notify.NewFeed(cfg.Notifications.FeedSize)
	notifier := notify.Fanout{feed, notify.NewLogger(logger)}

	// The client reads the token of the session it authenticates.
	var session *service.Session
	commerceClient := commerceapi.NewClient(commerceapi.Options{
		BaseURL:         cfg.CommerceAPI.BaseURL,
		Timeout:         cfg.CommerceAPI.Timeout,
		BreakerFailures: cfg.CommerceAPI.BreakerFailures,
		BreakerTimeout:  cfg.CommerceAPI.BreakerTimeout,
	}, commerceapi.WithTokenSource(commerceapi.TokenFunc(func() string { return session.AccessToken() })))

	session = service.NewSession(commerceClient, store, notifier)
	cartStore := service.NewCartStore(store, notifier)
	wishlistStore := service.NewWishlistStore(store, notifier)
	checkout := service.NewCheckoutCalculator(cartStore)
	catalog := service.NewCatalog(commerceClient, wishlistStore)

	var orderOpts []service.OrderOption
	if cfg.SendGrid.APIKey != "" {
		orderOpts = append(orderOpts, service.WithReceipts(sendgrid.NewReceiptSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)))
	}
	orders := service.NewOrderSubmitter(commerceClient, cartStore, checkout, session, notifier, orderOpts...)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	for name, load := range map[string]func(context.Context) error{
		"session":  session.Load,
		"cart":     cartStore.Load,
		"wishlist": wishlistStore.Load,
	} {
		if err := load(loadCtx); err != nil {
			slog.Warn("⚠️ Starting with empty state", slog.String("component", name), slog.String("error", err.Error()))
		}
	}
	cancelLoad()

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("state loaded", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver), slog.Int("cartItems", len(cartStore.List())))

	// Setup router
	routerMux := http.NewServeMux()
	api.RegisterRoutes(routerMux, &api.Services{
		Catalog:       catalog,
		Cart:          cartStore,
		Wishlist:      wishlistStore,
		Checkout:      checkout,
		Orders:        orders,
		Session:       session,
		Notifications: feed,
	})
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "shopity")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.Open(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgres.New(db), nil

	case config.StorageDriverRedis:
		client, err := redisstore.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			return nil, err
		}
		return redisstore.New(client, cfg.RedisConnect.Namespace), nil

	default:
		return memory.New(), nil
	}
}
