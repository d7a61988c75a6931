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

type RecordHandler struct {
	recordSvc service.RecordService
	validate  *validator.Validate
	log       logger.Logger
}

var _ Handler = (*RecordHandler)(nil)

func NewRecordHandler(recordSvc service.RecordService, validate *validator.Validate, log logger.Logger) *RecordHandler {
	return &RecordHandler{
		recordSvc: recordSvc,
		validate:  validate,
		log:       log,
	}
}

func (h *RecordHandler) Register(r *gin.Engine) {
	r.GET(constants.ListRecordPath, gintool.WrapQueryHandler(h.ListRecords, h.validate, h.log))
}

// ListRecords 获取比赛提交记录
func (h *RecordHandler) ListRecords(c *gin.Context, param *model.ListRecordParam) {
	ctx := logger.ContextWithFields(c.Request.Context(),
		logger.String("domain_id", param.DomainID),
		logger.String("contest", param.Contest))

	items, err := h.recordSvc.ListRecords(ctx, param.DomainID, param.ContestID())
	if err != nil {
		handleError(ctx, c, h.log, "ListRecords", err)
		return
	}
	gintool.JSON(c, http.StatusOK, items)
}
