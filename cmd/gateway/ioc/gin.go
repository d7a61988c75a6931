package ioc

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/to404hanga/hydro_gateway/config"
	"github.com/to404hanga/hydro_gateway/pkg/gintool"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/web"
)

func InitGinServer(cfg *config.Config, l logger.Logger, documentHandler *web.DocumentHandler, recordHandler *web.RecordHandler, userHandler *web.UserHandler, healthHandler *web.HealthHandler) *web.GinServer {
	l.Info("gin server configured",
		logger.String("addr", cfg.Gin.Addr),
		logger.Bool("metrics", cfg.Gin.EnableMetrics),
		logger.Bool("pprof", cfg.Gin.EnablePprof))

	engine := gin.New()
	engine.Use(
		gin.Logger(),
		gintool.RecoveryMiddleware(l),
		gintool.RequestIDMiddleware(),
		gintool.ContextMiddleware(),
	)

	if cfg.Gin.EnableMetrics {
		engine.Use(web.MetricsMiddleware())
		web.NewMetricsHandler().Register(engine)
	}
	if cfg.Gin.EnablePprof {
		pprof.Register(engine)
		l.Warn("pprof routes enabled")
	}

	documentHandler.Register(engine)
	recordHandler.Register(engine)
	userHandler.Register(engine)
	healthHandler.Register(engine)

	return &web.GinServer{
		Engine: engine,
		Addr:   cfg.Gin.Addr,
	}
}
