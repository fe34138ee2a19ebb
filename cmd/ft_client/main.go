package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_client/internal/adapters/storage/filestore"
	"github.com/SscSPs/finance_client/internal/apiclient"
	"github.com/SscSPs/finance_client/internal/cache"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/core/services"
	"github.com/SscSPs/finance_client/internal/handlers"
	"github.com/SscSPs/finance_client/internal/middleware"
	"github.com/SscSPs/finance_client/internal/platform/config"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- State and request layer ---
	store := state.NewStore(logger)
	loading := state.NewLoadingTracker(store)

	responses, err := cache.New(cfg.CacheTTL, cfg.CacheSize)
	if err != nil {
		logger.Error("Failed to create response cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The session owns the token; the transport reads it on every request.
	var session portssvc.SessionSvcFacade
	tokens := apiclient.TokenFunc(func() string {
		if session == nil {
			return ""
		}
		return session.Token()
	})

	transport := apiclient.NewHTTPTransport(cfg.APIBaseURL, cfg.HTTPTimeout, tokens, logger)
	executor := apiclient.NewExecutor(
		apiclient.WithMaxAttempts(cfg.RetryMaxAttempts),
		apiclient.WithBaseDelay(cfg.RetryBaseDelay),
		apiclient.WithExecutorLogger(logger),
	)
	client := apiclient.NewClient(transport, responses, executor,
		apiclient.WithLoadingIndicator(loading),
		apiclient.WithClientLogger(logger),
	)
	api := apiclient.NewAPI(client)

	// --- Services ---
	ws := handlers.NewWSHandler(logger)
	resolver := services.NewRateResolver(cfg.PivotCurrency)
	loader := services.NewDataLoader(api, store, ws, services.WithLoaderLogger(logger))
	sessions := filestore.NewSessionStore(afero.NewOsFs(), cfg.StateDir)
	session = services.NewSessionService(api, sessions, loader, store, ws,
		services.WithCacheInvalidator(client),
		services.WithSessionLogger(logger),
	)

	container := &portssvc.ServiceContainer{
		Session:    session,
		Data:       loader,
		Conversion: services.NewConversionService(api, store, resolver),
		Display:    services.NewCurrencyDisplay(store, resolver),
	}

	unsubscribe := store.Subscribe(ws.OnState)
	defer unsubscribe()
	refresher := services.NewCurrencyRefresher(store, services.CurrencyRefreshDelay, ws.OnCurrencyChange)
	defer refresher.Stop()

	// --- Startup ---
	if h, err := api.Health(ctx); err != nil || h.Status != "ok" {
		logger.Warn("API health check failed", slog.String("base_url", cfg.APIBaseURL))
	}
	if err := session.Restore(ctx); err != nil {
		logger.Warn("Session restore finished with errors", slog.String("error", err.Error()))
	}

	// --- Local view bridge ---
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	limiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(limiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, store, container, ws)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	go func() {
		logger.Info("Bridge starting", slog.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Bridge failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := ws.Close(); err != nil {
		logger.Warn("Failed to close websocket hub", slog.String("error", err.Error()))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Bridge shutdown failed", slog.String("error", err.Error()))
	}
}
