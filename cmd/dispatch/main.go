package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/internal/app"
)

/* dispatch runs a single pass and exits, for cron style scheduling.
 * Exit codes: 0 = pass completed, 1 = configuration or pass error,
 * 2 = another pass holds the lock
 */

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := httplog.NewLogger("workflow-dispatch", httplog.Options{
		JSON: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("starting engine")
		return 1
	}
	defer a.Close(context.Background())

	stats, err := a.Dispatcher.DispatchPending(ctx)

	out, _ := json.Marshal(stats)
	fmt.Println(string(out))

	if err != nil {
		if errors.Is(err, dispatch.ErrPassInProgress) {
			logger.Warn().Msg("another dispatch pass is running")
			return 2
		}
		logger.Error().Err(err).Msg("dispatch pass")
		return 1
	}
	return 0
}
