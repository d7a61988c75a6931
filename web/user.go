package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/model"
	"github.com/to404hanga/hydro_gateway/pkg/gintool"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/service"
)

type UserHandler struct {
	userSvc  service.UserService
	validate *validator.Validate
	log      logger.Logger
}

var _ Handler = (*UserHandler)(nil)

func NewUserHandler(userSvc service.UserService, validate *validator.Validate, log logger.Logger) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		validate: validate,
		log:      log,
	}
}

func (h *UserHandler) Register(r *gin.Engine) {
	r.GET(constants.GetUserPath, gintool.WrapQueryHandler(h.GetUser, h.validate, h.log))
	r.GET(constants.ListUserGroupPath, gintool.WrapQueryHandler(h.ListUserGroups, h.validate, h.log))
}

// GetUser 获取用户名
func (h *UserHandler) GetUser(c *gin.Context, param *model.GetUserParam) {
	ctx := logger.ContextWithFields(c.Request.Context(), logger.String("user_id", param.ID))

	userID, err := param.UserID()
	if err != nil {
		setReason(c, reasonInvalidParam)
		gintool.Error(c, http.StatusBadRequest, constants.MsgUserIDNotInteger)
		h.log.InfoContext(ctx, "GetUser user id out of range", logger.Error(err))
		return
	}

	ctx = logger.ContextWithFields(ctx, logger.Int64("uid", userID))
	user, err := h.userSvc.GetUser(ctx, userID)
	if err != nil {
		handleError(ctx, c, h.log, "GetUser", err)
		return
	}
	gintool.JSON(c, http.StatusOK, user)
}

// ListUserGroups 获取用户组列表
func (h *UserHandler) ListUserGroups(c *gin.Context, param *model.ListUserGroupParam) {
	ctx := logger.ContextWithFields(c.Request.Context(), logger.String("domain_id", param.DomainID))

	items, err := h.userSvc.ListUserGroups(ctx, param.DomainID)
	if err != nil {
		handleError(ctx, c, h.log, "ListUserGroups", err)
		return
	}
	gintool.JSON(c, http.StatusOK, items)
}
