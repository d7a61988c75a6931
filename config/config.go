package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

const (
	DefaultMongoHost        = "oj-mongo"
	DefaultMongoPort        = 27017
	DefaultMongoDatabase    = "hydro"
	DefaultConnectTimeoutMs = 5000
	DefaultServerPort       = 5000
)

type GinConfig struct {
	Addr          string `yaml:"addr" mapstructure:"addr"`
	EnablePprof   bool   `yaml:"enablePprof" mapstructure:"enablePprof"`
	EnableMetrics bool   `yaml:"enableMetrics" mapstructure:"enableMetrics"`
}

func (GinConfig) Key() string {
	return "gin"
}

type MongoConfig struct {
	Host             string `yaml:"host" mapstructure:"host"`
	Port             int    `yaml:"port" mapstructure:"port"`
	Database         string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutMs int    `yaml:"connectTimeoutMs" mapstructure:"connectTimeoutMs"` // 单位: 毫秒
}

func (MongoConfig) Key() string {
	return "mongo"
}

type LoggerConfig struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

func (LoggerConfig) Key() string {
	return "logger"
}

// Config 网关启动时构造一次, 之后只读
type Config struct {
	Gin    GinConfig
	Mongo  MongoConfig
	Logger LoggerConfig
}

// 旧版 config.yaml 使用的平铺 key
const (
	legacyMongoHostKey  = "mongo_host"
	legacyDockerPortKey = "docker_port"
)

// SetDefaults 设置默认值并绑定环境变量
func SetDefaults(v *viper.Viper) {
	v.SetDefault("gin.addr", ":"+strconv.Itoa(DefaultServerPort))
	v.SetDefault("gin.enablePprof", false)
	v.SetDefault("gin.enableMetrics", true)
	v.SetDefault("mongo.host", DefaultMongoHost)
	v.SetDefault("mongo.port", DefaultMongoPort)
	v.SetDefault("mongo.database", DefaultMongoDatabase)
	v.SetDefault("mongo.connectTimeoutMs", DefaultConnectTimeoutMs)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.development", false)

	_ = v.BindEnv("mongo.host", "MONGO_HOST")
	_ = v.BindEnv("mongo.port", "MONGO_PORT")
}

// ReadFile 读取配置文件, 文件不存在时返回 false 并沿用默认值与环境变量
func ReadFile(v *viper.Viper, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config file %s failed: %w", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return false, fmt.Errorf("read config file %s failed: %w", path, err)
	}
	return true, nil
}

// Load 从 viper 构造 Config
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.UnmarshalKey(cfg.Gin.Key(), &cfg.Gin); err != nil {
		return nil, fmt.Errorf("unmarshal gin config failed: %w", err)
	}
	if err := v.UnmarshalKey(cfg.Mongo.Key(), &cfg.Mongo); err != nil {
		return nil, fmt.Errorf("unmarshal mongo config failed: %w", err)
	}
	if err := v.UnmarshalKey(cfg.Logger.Key(), &cfg.Logger); err != nil {
		return nil, fmt.Errorf("unmarshal logger config failed: %w", err)
	}

	// 旧版配置文件中的 mongo_host 优先于环境变量
	if v.InConfig(legacyMongoHostKey) {
		cfg.Mongo.Host = v.GetString(legacyMongoHostKey)
	}
	if v.InConfig(legacyDockerPortKey) {
		cfg.Gin.Addr = ":" + strconv.Itoa(v.GetInt(legacyDockerPortKey))
	}

	// 优先使用环境变量中设置的服务端口
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Gin.Addr = ":" + port
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.Host == "" {
		return errors.New("mongo.host is empty")
	}
	if c.Mongo.Port <= 0 || c.Mongo.Port > 65535 {
		return fmt.Errorf("mongo.port %d out of range", c.Mongo.Port)
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is empty")
	}
	if c.Mongo.ConnectTimeoutMs <= 0 {
		return fmt.Errorf("mongo.connectTimeoutMs %d must be positive", c.Mongo.ConnectTimeoutMs)
	}
	return nil
}
