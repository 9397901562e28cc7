// Package config loads service and client settings from the environment.
// A .env file in the working directory is honored for local development;
// variables already set in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultGreeting is the message returned by GET /hello unless overridden.
const DefaultGreeting = "Hello from backend"

// Server holds the greeting service settings.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" env-default:"8080"`
	// Greeting is the constant message served by GET /hello.
	Greeting string `env:"GREETING_MESSAGE" env-default:"Hello from backend"`
	// LogLevel is the minimum zap level name.
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	// MetricsPath is where Prometheus metrics are exposed.
	MetricsPath string `env:"METRICS_PATH" env-default:"/metrics"`

	HTTP struct {
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"2s"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
		// MaxHeaderBytes defaults to 64 KB.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"65536"`
		// MaxBodyBytes bounds request bodies; /hello reads none.
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576"`
	}

	// ShutdownTimeout is the graceful shutdown budget.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address for Port.
func (s Server) Addr() string {
	return ":" + s.Port
}

// Client holds the greeting consumer settings.
type Client struct {
	// APIAddr is the base URL of the greeting service.
	APIAddr string `env:"GREETER_API_ADDR" env-default:"http://localhost:8080"`
	// Timeout bounds the single fetch; zero disables it.
	Timeout time.Duration `env:"GREETER_TIMEOUT" env-default:"10s"`
}

// LoadServer reads Server settings, loading envFile first when it exists.
func LoadServer(envFile string) (*Server, error) {
	var cfg Server
	if err := load(envFile, &cfg); err != nil {
		return nil, err
	}
	if cfg.Greeting == "" {
		return nil, errors.New("config: GREETING_MESSAGE must not be empty")
	}
	return &cfg, nil
}

// LoadClient reads Client settings, loading envFile first when it exists.
func LoadClient(envFile string) (*Client, error) {
	var cfg Client
	if err := load(envFile, &cfg); err != nil {
		return nil, err
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("config: GREETER_TIMEOUT must not be negative, got %s", cfg.Timeout)
	}
	return &cfg, nil
}

func load(envFile string, cfg any) error {
	if envFile != "" {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}
	return nil
}
