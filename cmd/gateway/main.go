package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/to404hanga/hydro_gateway/config"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/ioc"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
)

const defaultConfigPath = "./config/config.yaml"

func main() {
	cfile := pflag.String("config", defaultConfigPath, "config file path")
	pflag.Parse()

	// .env 不覆盖已存在的环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Panicf("load .env failed: %v", err)
	}

	v := viper.GetViper()
	config.SetDefaults(v)
	found, err := config.ReadFile(v, *cfile)
	if err != nil {
		log.Panicf("read config file failed: %v", err)
	}
	if !found {
		log.Printf("config file %s not found, using defaults", *cfile)
	}

	cfg, err := config.Load(v)
	if err != nil {
		log.Panicf("load config failed: %v", err)
	}

	gin.DisableBindValidation()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := ioc.InitLogger(cfg)
	defer func() {
		_ = l.Sync()
	}()

	app := BuildDependency(cfg, l)
	l.Info("gin server start",
		logger.String("service", constants.GatewayServiceName),
		logger.String("addr", app.Addr))
	if err := app.Start(ctx); err != nil {
		l.Error("gin server failed", logger.Error(err))
		log.Panicf("gin server failed: %v", err)
	}
	l.Info("gin server stopped", logger.String("service", constants.GatewayServiceName))
}
