package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/internal/app"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/internal/http/chi"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/metrics"
)

const TIMEOUT = 30 * time.Second

/* api serves the admin API and runs the dispatcher on a ticker.
 * Imports only go one direction: down. main wires the business packages,
 * which import the storage packages.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	logger := httplog.NewLogger("workflow-webhooks", httplog.Options{
		JSON: true,
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("starting engine")
		return
	}
	defer a.Close(context.Background())

	exporter, err := metrics.NewOTelExporter(a.Collector)
	if err != nil {
		logger.Error().Err(err).Msg("creating metrics exporter")
		return
	}
	defer exporter.Shutdown(context.Background())
	a.Dispatcher.WithRecorder(exporter)

	r := chi.Handlers(ctx, chi.Services{
		Triggers:      a.Notifier,
		Rules:         a.Rules,
		Subscriptions: a.Registry,
		Events:        a.Queue,
		Dispatcher:    a.Dispatcher,
		Metrics:       exporter.ServeHTTP(),
	})
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	go runDispatcher(ctx, a.Dispatcher, cfg.DispatchInterval, logger)

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().
		Str("port", cfg.Port).
		Str("backend", cfg.StorageBackend).
		Str("instance_id", cfg.InstanceID).
		Dur("dispatch_interval", cfg.DispatchInterval).
		Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("serving")
		return
	}
	err = <-errShutdown
	if err != nil {
		logger.Error().Err(err).Msg("shutting down")
		return
	}
}

// runDispatcher triggers a pass on every tick until ctx is done
func runDispatcher(ctx context.Context, d *dispatch.Dispatcher, interval time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := d.DispatchPending(ctx)
			switch {
			case err == nil:
			case errors.Is(err, dispatch.ErrPassInProgress):
				logger.Debug().Msg("previous dispatch pass still running")
			default:
				logger.Error().Err(err).Msg("dispatch pass")
			}
		}
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
