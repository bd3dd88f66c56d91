package main

import (
	"airport-distance-service/internal/adapters/airports"
	"airport-distance-service/internal/api"
	"airport-distance-service/internal/config"
	"airport-distance-service/internal/services"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the airport lookup adapter behind its port and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		log.Fatal(err)
	}

	// One shared client: connections are pooled across requests, timeouts are per lookup.
	session := &http.Client{Timeout: cfg.LookupTimeout + time.Second}
	resolver, err := airports.NewNinjasResolver(
		cfg.APIKey,
		airports.WithBaseURL(cfg.BaseURL),
		airports.WithHTTPClient(session),
		airports.WithTimeout(cfg.LookupTimeout),
	)
	if err != nil {
		log.Fatal(err)
	}

	svc, err := services.NewDistanceService(resolver)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.LookupTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=:%s upstream=%s", cfg.Port, cfg.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
	}
}
