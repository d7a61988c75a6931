package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/pkg/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// withSession 为本次调用独占一个连接, 连接失败统一转换为 ErrDatabaseUnavailable
func withSession(ctx context.Context, connector mongodb.Connector, log logger.Logger, fn func(db *mongo.Database) error) error {
	err := mongodb.WithSession(ctx, connector, log, fn)
	if errors.Is(err, mongodb.ErrConnect) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return err
}
