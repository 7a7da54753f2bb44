package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "temperature_prediction/docs"
	"temperature_prediction/internal/config"
	"temperature_prediction/internal/handlers"
	"temperature_prediction/internal/logger"
	"temperature_prediction/internal/prediction"
	"temperature_prediction/internal/server"
	"temperature_prediction/internal/service"
	"temperature_prediction/internal/state"
)

const shutdownTimeout = 10 * time.Second

// @title        Temperature Prediction API
// @version      1.0
// @description  Select a future date and follow the predicted temperature for it.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger options come from the config, so fall back to defaults here
		logger.Get(logger.Options{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	loc, _ := cfg.Location() // validated by config.Load

	// wire dependencies
	predictor := newPredictor(cfg)
	services := service.NewService(predictor, state.NewStore(), log)
	apiHandler := handlers.NewHandler(services, log, handlers.DateRules{
		MaxDaysAhead: cfg.Picker.MaxDaysAhead,
		Location:     loc,
		Now:          time.Now,
	})

	log.Infow("prediction endpoint configured",
		"endpoint", cfg.Prediction.EndpointURL,
		"timeout", cfg.Prediction.Timeout,
		"rate_limit_rps", cfg.Prediction.RateLimit.RPS,
	)

	// start HTTP server
	srv := newServer(cfg, apiHandler.InitRoutes())
	runHTTPServer(srv, cfg.Port, log)

	// graceful shutdown
	waitForShutdown(srv, services, log)
}

// newPredictor builds the outbound client, throttled when rate_limit.rps > 0.
func newPredictor(cfg *config.Config) prediction.Predictor {
	client := prediction.NewClient(cfg.Prediction.EndpointURL, prediction.WithTimeout(cfg.Prediction.Timeout))
	return prediction.Wrap(client, cfg.Prediction.RateLimit.RPS, cfg.Prediction.RateLimit.Burst)
}

// newServer builds the server before any goroutine touches it.
func newServer(cfg *config.Config, handler http.Handler) *server.Server {
	return server.New(cfg.Port, handler, server.Timeouts{
		ReadHeader: cfg.HTTP.ReadHeaderTimeout,
		Write:      cfg.HTTP.WriteTimeout,
		Idle:       cfg.HTTP.IdleTimeout,
	})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals, stops accepting requests and
// lets in-flight predictions settle.
func waitForShutdown(srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}

	settled := make(chan struct{})
	go func() {
		services.Prediction.Wait()
		close(settled)
	}()
	select {
	case <-settled:
	case <-ctx.Done():
		log.Warnw("in-flight predictions did not settle before exit")
	}
}
