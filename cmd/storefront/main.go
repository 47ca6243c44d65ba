package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(fxLogger),
		injectInfra(),
		injectCatalog(),
		injectHTTP(),
		fx.Invoke(startServer),
	).Run()
}

// fxLogger routes fx's own lifecycle events through the service logger
func fxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
	)
}

// injectCatalog provides the catalog services and what they depend on besides storage
func injectCatalog() fx.Option {
	return fx.Provide(
		qrcode.NewShareCodeService,
		impl.NewCatalogService,
		impl.NewFavoriteService,
	)
}

func injectHTTP() fx.Option {
	return fx.Provide(
		apimiddleware.NewIdentityMiddleware,
		handler.NewStoreHandler,
		handler.NewFavoriteHandler,
		handler.NewShareHandler,
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer serves every delivery in the background. A delivery that
// cannot serve stops the whole application so OnStop hooks still run.
func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Catalog server stopped", slog.Any("error", err))
				if err := params.Shutdown(fx.ExitCode(1)); err != nil {
					params.Logger.Error("Failed to request shutdown", slog.Any("error", err))
				}
			}
		}()
	}
}
