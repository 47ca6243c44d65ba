// Command eventworker receives catalog events pushed by Pub/Sub and records
// them in the activity log.
package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker"
	"storefront/internal/delivery/worker/handler"
	logs "storefront/internal/infra/log"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger *slog.Logger
	Worker delivery.Delivery
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			handler.NewEventHandler,
			worker.NewServer,
		),
		fx.Invoke(run),
	).Run()
}

// run serves the push endpoint until the application stops
func run(ctx context.Context, params runParams) {
	go func() {
		if err := params.Worker.Serve(ctx); err != nil {
			params.Logger.Error("Event worker stopped", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to request shutdown", slog.Any("error", err))
			}
		}
	}()
}
