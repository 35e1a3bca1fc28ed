package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	StaticDir       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ACTIVITIES_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	environment := os.Getenv("ACTIVITIES_ENV")
	if environment == "" {
		environment = "development"
	}

	staticDir := os.Getenv("ACTIVITIES_STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	requestTimeout := defaultRequestTimeout
	if v := os.Getenv("ACTIVITIES_REQUEST_TIMEOUT"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			requestTimeout = duration
		}
	}

	shutdownTimeout := defaultShutdownTimeout
	if v := os.Getenv("ACTIVITIES_SHUTDOWN_TIMEOUT"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			shutdownTimeout = duration
		}
	}

	return Server{
		Addr:            addr,
		Environment:     environment,
		StaticDir:       staticDir,
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
	}
}
