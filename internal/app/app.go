package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/bluemonkey003/lunchroom/internal/config"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
	"github.com/bluemonkey003/lunchroom/internal/event"
	"github.com/bluemonkey003/lunchroom/internal/notify"
	"github.com/bluemonkey003/lunchroom/internal/realtime"
	"github.com/bluemonkey003/lunchroom/internal/server/http/handlers"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewLunchFacade,
		newHTTPServer,
		newFanout,
		func(f *LunchFacade) handlers.LunchFacade { return f },
		func(h *realtime.Hub) notify.Pusher { return h },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type fanoutParams struct {
	fx.In

	Users         repository.UserRepository
	Notifications repository.NotificationRepository
	Pusher        notify.Pusher
	Config        *config.Config
	Logger        *slog.Logger
}

func newFanout(p fanoutParams) *notify.Fanout {
	return notify.NewFanout(p.Users, p.Notifications, p.Pusher, p.Config.FanoutWorkers, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Bus        *event.Bus
	Hub        *realtime.Hub
	Fanout     *notify.Fanout
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	// Subscription order fixes delivery order per event: live clients
	// first, then the durable fan-out.
	p.Bus.Subscribe(p.Hub)
	p.Bus.Subscribe(p.Fanout)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting lunchroom", slog.String("addr", p.Server.Addr))
			p.Bus.Start(ctx)
			p.Fanout.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			// Drain pending events into notifications before dropping
			// the live connections.
			p.Bus.Stop()
			p.Fanout.Stop()
			p.Hub.Shutdown(shutdownCtx)

			p.Logger.Info("lunchroom stopped")
			return nil
		},
	})
}
