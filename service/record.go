package service

import (
	"context"
	"fmt"

	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/model"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RecordService interface {
	// ListRecords 获取比赛中的提交记录
	ListRecords(ctx context.Context, domainID string, contestID primitive.ObjectID) ([]model.RecordItem, error)
}

type RecordServiceImpl struct {
	connector mongodb.Connector
	log       logger.Logger
}

var _ RecordService = (*RecordServiceImpl)(nil)

func NewRecordService(connector mongodb.Connector, log logger.Logger) RecordService {
	return &RecordServiceImpl{
		connector: connector,
		log:       log,
	}
}

// ListRecords 获取提交记录
func (s *RecordServiceImpl) ListRecords(ctx context.Context, domainID string, contestID primitive.ObjectID) ([]model.RecordItem, error) {
	var items []model.RecordItem
	err := withSession(ctx, s.connector, s.log, func(db *mongo.Database) error {
		var err error
		items, err = findAll(ctx, db.Collection(constants.RecordCollection),
			bson.D{{Key: "domainId", Value: domainID}, {Key: "contest", Value: contestID}},
			model.RecordProjection,
			model.RecordRequiredFields,
			model.NewRecordItem)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ListRecords failed: %w", err)
	}
	return items, nil
}
