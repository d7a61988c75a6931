package gintool

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/to404hanga/hydro_gateway/model"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
)

// WrapQueryHandler 绑定并校验查询参数, 校验失败时返回第一个不合法字段对应的提示
func WrapQueryHandler[T any, P interface {
	*T
	model.QueryParam
}](h func(c *gin.Context, param P), v *validator.Validate, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := P(new(T))
		ctx := c.Request.Context()

		if err := c.ShouldBindQuery(param); err != nil {
			Error(c, http.StatusBadRequest, err.Error())
			log.WarnContext(ctx, "WrapQueryHandler bind query failed", logger.Error(err))
			return
		}

		if err := v.StructCtx(ctx, param); err != nil {
			msg := err.Error()
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				if m := param.ValidationMessage(verrs[0].StructField(), verrs[0].Tag()); m != "" {
					msg = m
				}
			}
			Error(c, http.StatusBadRequest, msg)
			log.InfoContext(ctx, "WrapQueryHandler validate query failed", logger.String("reason", msg))
			return
		}

		h(c, param)
	}
}
