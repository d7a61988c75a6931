package gintool

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
)

// RequestIDMiddleware 没有 X-Request-ID 时生成一个, 并在响应头中回写
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestIDKey)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(constants.HeaderRequestIDKey, requestID)
		}
		c.Header(constants.HeaderRequestIDKey, requestID)
		c.Next()
	}
}

// ContextMiddleware 上下文中间件
func ContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(GinContextToLoggerContext(c))
		c.Next()
	}
}

// RecoveryMiddleware 捕获 panic, 以 {"error": ...} 格式返回 500
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		msg := fmt.Sprint(rec)
		log.ErrorContext(c.Request.Context(), "RecoveryMiddleware recovered panic", logger.String("panic", msg))
		Error(c, http.StatusInternalServerError, msg)
		c.Abort()
	})
}
