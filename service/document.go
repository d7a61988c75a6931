package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/model"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DocumentService interface {
	// ListContests 获取域下的比赛列表
	ListContests(ctx context.Context, domainID string) ([]model.ContestItem, error)
	// ListProblems 获取域下的题目列表, 并计算每道题的总分
	ListProblems(ctx context.Context, domainID string) ([]model.ProblemItem, error)
}

type DocumentServiceImpl struct {
	connector mongodb.Connector
	log       logger.Logger
}

var _ DocumentService = (*DocumentServiceImpl)(nil)

func NewDocumentService(connector mongodb.Connector, log logger.Logger) DocumentService {
	return &DocumentServiceImpl{
		connector: connector,
		log:       log,
	}
}

// ListContests 获取比赛列表
func (s *DocumentServiceImpl) ListContests(ctx context.Context, domainID string) ([]model.ContestItem, error) {
	var items []model.ContestItem
	err := withSession(ctx, s.connector, s.log, func(db *mongo.Database) error {
		var err error
		items, err = findAll(ctx, db.Collection(constants.DocumentCollection),
			bson.D{{Key: "domainId", Value: domainID}, {Key: "docType", Value: int(model.DocTypeContest)}},
			model.ContestProjection,
			model.ContestRequiredFields,
			model.NewContestItem)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ListContests failed: %w", err)
	}
	return items, nil
}

// ListProblems 获取题目列表, 单个题目 config 解析失败不影响其他题目
func (s *DocumentServiceImpl) ListProblems(ctx context.Context, domainID string) ([]model.ProblemItem, error) {
	var items []model.ProblemItem
	err := withSession(ctx, s.connector, s.log, func(db *mongo.Database) error {
		var err error
		items, err = findAll(ctx, db.Collection(constants.DocumentCollection),
			bson.D{{Key: "domainId", Value: domainID}, {Key: "docType", Value: int(model.DocTypeProblem)}},
			model.ProblemProjection,
			model.ProblemRequiredFields,
			func(doc *model.ProblemDocument) model.ProblemItem {
				return s.shapeProblem(ctx, doc)
			})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ListProblems failed: %w", err)
	}
	return items, nil
}

func (s *DocumentServiceImpl) shapeProblem(ctx context.Context, doc *model.ProblemDocument) model.ProblemItem {
	var (
		score float64
		err   error
	)
	if doc.Config == nil {
		err = fmt.Errorf("%w: config is null", ErrInvalidConfig)
	} else {
		score, err = ProblemScore(*doc.Config)
	}
	if err != nil {
		item := model.NewProblemItem(doc, 0)
		if errors.Is(err, ErrInvalidConfig) {
			item.Error = constants.MsgInvalidConfigFormat
		}
		s.log.WarnContext(ctx, "ListProblems parse config failed",
			logger.String("problem_id", item.ID),
			logger.Error(err))
		return item
	}
	return model.NewProblemItem(doc, score)
}
