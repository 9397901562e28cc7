// Package server assembles the greeting service: the chi router with its
// middleware stack, the huma API, the operational endpoints and the browser
// consumer page.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/huma-greeter/internal/config"
	"github.com/janisto/huma-greeter/internal/http/health"
	"github.com/janisto/huma-greeter/internal/http/v1/routes"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
	"github.com/janisto/huma-greeter/internal/platform/metrics"
	appmiddleware "github.com/janisto/huma-greeter/internal/platform/middleware"
	"github.com/janisto/huma-greeter/internal/platform/respond"
	"github.com/janisto/huma-greeter/internal/theme"
	"github.com/janisto/huma-greeter/internal/web"
)

const (
	apiTitle = "Huma Greeter API"
	docsPath = "/api-docs"
	helloURL = "/hello"
)

// Options configures the router.
type Options struct {
	Config  *config.Server
	Version string
	Theme   theme.Theme
	// Metrics is created when nil.
	Metrics *metrics.HTTP
}

// NewRouter builds the full handler tree and returns it with the huma API.
func NewRouter(opts Options) (http.Handler, huma.API, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, nil, errors.New("server: nil config")
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewHTTP()
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.HTTP.MaxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	humaCfg := huma.DefaultConfig(apiTitle, opts.Version)
	humaCfg.DocsPath = docsPath
	// Huma's negotiation matches Accept exactly and does not interpret
	// wildcards per RFC 9110 section 12.5.1, so unsupported or wildcard Accept
	// values fall back to JSON (RFC 9110 section 12.4.1 permits this).
	api := humachi.New(router, humaCfg)
	addCBORContentTypes(api)

	routes.Register(api, routes.Options{Greeting: cfg.Greeting})

	page, err := web.Handler(opts.Theme, helloURL)
	if err != nil {
		return nil, nil, fmt.Errorf("server: %w", err)
	}
	router.Get("/", page)
	router.Get("/health", health.Handler(opts.Version))
	router.Method(http.MethodGet, cfg.MetricsPath, m.Handler())

	return router, api, nil
}

// addCBORContentTypes advertises application/cbor next to every JSON
// request and response body in the OpenAPI document.
func addCBORContentTypes(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}

// NewHTTPServer wraps h with the configured timeouts and limits.
func NewHTTPServer(cfg *config.Server, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}
}

// Serve accepts connections on ln until ctx is done, then shuts srv down
// within shutdownTimeout. A listener failure is returned immediately.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("serve %s: %w", ln.Addr(), err)
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
