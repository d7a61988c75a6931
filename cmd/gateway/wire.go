//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/to404hanga/hydro_gateway/cmd/gateway/ioc"
	"github.com/to404hanga/hydro_gateway/config"
	commonioc "github.com/to404hanga/hydro_gateway/ioc"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/service"
	"github.com/to404hanga/hydro_gateway/web"
)

func BuildDependency(cfg *config.Config, l logger.Logger) *web.GinServer {
	wire.Build(
		commonioc.InitValidator,
		commonioc.InitMongoConnector,

		service.NewDocumentService,
		service.NewRecordService,
		service.NewUserService,

		web.NewDocumentHandler,
		web.NewRecordHandler,
		web.NewUserHandler,
		web.NewHealthHandler,

		ioc.InitGinServer,
	)
	return &web.GinServer{}
}
