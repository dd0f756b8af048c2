package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paulkisakye-beep/little-readers/config"
	"github.com/paulkisakye-beep/little-readers/internal/cartstore/file"
	"github.com/paulkisakye-beep/little-readers/internal/gateway/appsscript"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
	rest "github.com/paulkisakye-beep/little-readers/internal/transport/http"
	"github.com/paulkisakye-beep/little-readers/internal/usecase"
	"github.com/paulkisakye-beep/little-readers/pkg/logger"
	"github.com/paulkisakye-beep/little-readers/pkg/metrics"
	"github.com/paulkisakye-beep/little-readers/pkg/telemetry"
	"github.com/paulkisakye-beep/little-readers/pkg/validate"
)

// App — the assembled service and its HTTP surface.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Storefront      *usecase.Storefront
	gracefulTimeout time.Duration
}

// Cleanup — releases resources in reverse assembly order.
type Cleanup func()

// applyGinMode — sets the Gin mode from the config string; an unknown
// value falls back to debug with a warning.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — assembles dependencies and returns the application, a
// cleanup function and an error.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Gateway to the external book service, with lookup caching on top.
	client := appsscript.NewClient(appsscript.Config{
		BaseURL:      cfg.Backend.URL,
		APIKey:       cfg.Backend.APIKey,
		Timeout:      cfg.Backend.Timeout,
		OrderTimeout: cfg.Backend.OrderTimeout,
	}, logg)
	gateway := appsscript.NewCachedGateway(client, appsscript.CacheConfig{
		Capacity: cfg.Cache.Capacity,
		AreasTTL: cfg.Cache.AreasTTL,
		PromoTTL: cfg.Cache.PromoTTL,
		PriceTTL: cfg.Cache.PriceTTL,
	})

	carts, err := file.NewStore(cfg.Cart.Dir)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	catalog := usecase.NewCatalogStore(gateway, logg)
	validator := validate.NewOrderValidator()
	storefront := usecase.NewStorefront(gateway, carts, validator, catalog, logg, cfg.Checkout.AutoClose)

	// Warm the catalog; an unreachable backend at boot is not fatal,
	// the first reload after it recovers fills the snapshot.
	if err := catalog.Reload(ctx); err != nil {
		logg.Warnf(ctx, "initial catalog load failed: %v", err)
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(storefront, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Storefront:      storefront,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — serves HTTP until the context is cancelled or the server
// fails, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
