// Package delivery defines the contract every inbound transport implements.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by the fx invoke hook.
type Delivery interface {
	Serve(ctx context.Context) error
}

// StartParams collects every Delivery provided into the deliveries group.
type StartParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves each delivery in its own goroutine. The first one to fail asks
// fx to shut the whole application down so every OnStop hook runs.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))

			if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("Failed to shut down gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
