package ioc

import (
	"log"

	"github.com/to404hanga/hydro_gateway/config"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
)

func InitLogger(cfg *config.Config) *logger.ZapLogger {
	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Development)
	if err != nil {
		log.Panicf("init logger failed: %v", err)
	}
	return l
}
