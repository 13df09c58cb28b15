package di

import (
	"go.uber.org/fx"

	"github.com/bluemonkey003/lunchroom/internal/app"
	"github.com/bluemonkey003/lunchroom/internal/config"
	"github.com/bluemonkey003/lunchroom/internal/event"
	"github.com/bluemonkey003/lunchroom/internal/logger"
	"github.com/bluemonkey003/lunchroom/internal/pkg/auth"
	"github.com/bluemonkey003/lunchroom/internal/realtime"
	"github.com/bluemonkey003/lunchroom/internal/server/http/router"
	"github.com/bluemonkey003/lunchroom/internal/storage/postgres"
	"github.com/bluemonkey003/lunchroom/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		event.Module,
		usecase.Module,
		realtime.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
