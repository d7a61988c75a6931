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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserService interface {
	// GetUser 根据 ID 获取用户名
	GetUser(ctx context.Context, userID int64) (*model.UserItem, error)
	// ListUserGroups 获取域下的用户组
	ListUserGroups(ctx context.Context, domainID string) ([]model.UserGroupItem, error)
}

type UserServiceImpl struct {
	connector mongodb.Connector
	log       logger.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

func NewUserService(connector mongodb.Connector, log logger.Logger) UserService {
	return &UserServiceImpl{
		connector: connector,
		log:       log,
	}
}

// GetUser 获取用户, 不存在时返回 ErrUserNotFound
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*model.UserItem, error) {
	var item *model.UserItem
	err := withSession(ctx, s.connector, s.log, func(db *mongo.Database) error {
		raw, err := db.Collection(constants.UserCollection).
			FindOne(ctx, bson.D{{Key: "_id", Value: userID}}, options.FindOne().SetProjection(model.UserProjection)).
			Raw()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if err = model.RequireFields(raw, model.UserRequiredFields...); err != nil {
			return fmt.Errorf("user %d: %w", userID, err)
		}

		var user model.User
		if err = bson.Unmarshal(raw, &user); err != nil {
			return fmt.Errorf("decode user failed: %w", err)
		}
		item = &model.UserItem{Uname: user.Uname}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("GetUser failed: %w", err)
	}
	return item, nil
}

// ListUserGroups 获取用户组列表
func (s *UserServiceImpl) ListUserGroups(ctx context.Context, domainID string) ([]model.UserGroupItem, error) {
	var items []model.UserGroupItem
	err := withSession(ctx, s.connector, s.log, func(db *mongo.Database) error {
		var err error
		items, err = findAll(ctx, db.Collection(constants.UserGroupCollection),
			bson.D{{Key: "domainId", Value: domainID}},
			model.UserGroupProjection,
			model.UserGroupRequiredFields,
			model.NewUserGroupItem)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ListUserGroups failed: %w", err)
	}
	return items, nil
}
