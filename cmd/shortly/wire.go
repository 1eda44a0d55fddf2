//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"shortly/internal/biz"
	"shortly/internal/conf"
	"shortly/internal/data"
	"shortly/internal/infra/eventbus"
	"shortly/internal/server"
	"shortly/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, *conf.App, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		server.ProviderSet,
		data.ProviderSet,
		biz.ProviderSet,
		service.ProviderSet,
		eventbus.ProviderSet,
		wire.Bind(new(biz.EventPublisher), new(*eventbus.EventBus)),
		newApp,
	))
}
