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

type DocumentHandler struct {
	documentSvc service.DocumentService
	validate    *validator.Validate
	log         logger.Logger
}

var _ Handler = (*DocumentHandler)(nil)

func NewDocumentHandler(documentSvc service.DocumentService, validate *validator.Validate, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentSvc: documentSvc,
		validate:    validate,
		log:         log,
	}
}

func (h *DocumentHandler) Register(r *gin.Engine) {
	r.GET(constants.ListDocumentPath, gintool.WrapQueryHandler(h.ListDocuments, h.validate, h.log))
}

// ListDocuments 按 docType 返回比赛列表或题目列表
func (h *DocumentHandler) ListDocuments(c *gin.Context, param *model.ListDocumentParam) {
	ctx := logger.ContextWithFields(c.Request.Context(),
		logger.String("domain_id", param.DomainID),
		logger.Int("doc_type", int(param.Type())))

	switch param.Type() {
	case model.DocTypeContest:
		items, err := h.documentSvc.ListContests(ctx, param.DomainID)
		if err != nil {
			handleError(ctx, c, h.log, "ListContests", err)
			return
		}
		gintool.JSON(c, http.StatusOK, items)

	case model.DocTypeProblem:
		items, err := h.documentSvc.ListProblems(ctx, param.DomainID)
		if err != nil {
			handleError(ctx, c, h.log, "ListProblems", err)
			return
		}
		for _, item := range items {
			if item.Error != "" {
				invalidProblemConfigTotal.Inc()
			}
		}
		gintool.JSON(c, http.StatusOK, items)

	default:
		gintool.Error(c, http.StatusBadRequest, constants.MsgInvalidDocType)
	}
}
