// Package worker serves the Pub/Sub push endpoint of the catalog event worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type eventWorker struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EventHandler *handler.EventHandler
}

// NewServer builds the worker and registers its shutdown hook
func NewServer(params ServerParams) delivery.Delivery {
	w := &eventWorker{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		echo:   newEcho(params.Cfg, params.Logger, params.EventHandler),
	}

	params.Lc.Append(fx.Hook{OnStop: w.stop})

	return w
}

func newEcho(cfg *config.Config, logger *slog.Logger, eventHandler *handler.EventHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", eventHandler.HandlePush)

	return e
}

func (w *eventWorker) Serve(context.Context) error {
	w.logger.Info("Starting catalog event worker", slog.String("host_port", w.addr))

	if err := w.echo.Start(w.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (w *eventWorker) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w.logger.Info("Shutting down catalog event worker")

	return errors.WithStack(w.echo.Shutdown(ctx))
}
