package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/huma-greeter/internal/config"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
	"github.com/janisto/huma-greeter/internal/server"
	"github.com/janisto/huma-greeter/internal/theme"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const envFile = ".env"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	if err := run(); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer(envFile)
	if err != nil {
		return err
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	router, _, err := server.NewRouter(server.Options{
		Config:  cfg,
		Version: Version,
		Theme:   theme.Default(),
	})
	if err != nil {
		return err
	}
	srv := server.NewHTTPServer(cfg, router)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		return err
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx, srv, ln, cfg.ShutdownTimeout)
}
