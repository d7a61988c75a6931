package gintool

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
)

// GinContextToLoggerContext 将 Gin 上下文转换为 Logger 上下文
func GinContextToLoggerContext(c *gin.Context) context.Context {
	baseCtx := c.Request.Context()

	fields := make([]logger.Field, 0, 2)
	if requestID := c.GetHeader(constants.HeaderRequestIDKey); requestID != "" {
		fields = append(fields, logger.String("RequestID", requestID))
	}
	fields = append(fields, logger.String("Path", c.Request.URL.Path))

	return logger.ContextWithFields(baseCtx, fields...)
}
