package ioc

import (
	"time"

	"github.com/to404hanga/hydro_gateway/config"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/pkg/mongodb"
)

// InitMongoConnector 每个请求通过 connector 建立独立连接, 这里不做预连接
func InitMongoConnector(cfg *config.Config, l logger.Logger) mongodb.Connector {
	l.Info("mongo connector configured",
		logger.String("host", cfg.Mongo.Host),
		logger.Int("port", cfg.Mongo.Port),
		logger.String("database", cfg.Mongo.Database))

	return mongodb.NewClientConnector(
		cfg.Mongo.Host,
		cfg.Mongo.Port,
		cfg.Mongo.Database,
		time.Duration(cfg.Mongo.ConnectTimeoutMs)*time.Millisecond,
		l)
}
