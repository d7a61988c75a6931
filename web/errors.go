package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/pkg/gintool"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/service"
)

// handleError 将 service 返回的错误映射为 HTTP 状态码与错误信息
func handleError(ctx context.Context, c *gin.Context, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		setReason(c, reasonNotFound)
		gintool.Error(c, http.StatusNotFound, constants.MsgUserNotFound)
		log.InfoContext(ctx, op+" user not found")
		return
	case errors.Is(err, service.ErrDatabaseUnavailable):
		setReason(c, reasonMongoUnavailable)
		gintool.Error(c, http.StatusInternalServerError, constants.MsgMongoConnectFailed)
	default:
		setReason(c, reasonInternal)
		gintool.Error(c, http.StatusInternalServerError, err.Error())
	}
	log.ErrorContext(ctx, op+" failed", logger.Error(err))
}
