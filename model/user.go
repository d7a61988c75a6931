package model

import (
	"strconv"

	"github.com/to404hanga/hydro_gateway/constants"
	"go.mongodb.org/mongo-driver/bson"
)

type GetUserParam struct {
	ID string `form:"_id" validate:"required,digits"` // 用户 ID, 十进制非负整数
}

var _ QueryParam = (*GetUserParam)(nil)

func (p *GetUserParam) ValidationMessage(field, tag string) string {
	if field != "ID" {
		return ""
	}
	if tag == "required" {
		return constants.MsgUserIDRequired
	}
	return constants.MsgUserIDNotInteger
}

// UserID 解析用户 ID, 超出 int64 范围时返回错误
func (p *GetUserParam) UserID() (int64, error) {
	return strconv.ParseInt(p.ID, 10, 64)
}

// User user 集合的投影
type User struct {
	Uname *string `bson:"uname"`
}

var UserProjection = bson.D{{Key: "uname", Value: 1}}

var UserRequiredFields = []string{"uname"}

type UserItem struct {
	Uname *string `json:"uname"`
}

type ListUserGroupParam struct {
	DomainParam
}

var _ QueryParam = (*ListUserGroupParam)(nil)

func (p *ListUserGroupParam) ValidationMessage(field, tag string) string {
	msg, _ := p.DomainParam.validationMessage(field, tag)
	return msg
}

// UserGroup user.group 集合的投影
type UserGroup struct {
	ID   bson.RawValue `bson:"_id"`
	Name *string       `bson:"name"`
	Uids []int64       `bson:"uids"`
}

var UserGroupProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "uids", Value: 1},
}

var UserGroupRequiredFields = []string{"_id", "name"}

type UserGroupItem struct {
	ID   string  `json:"_id"`
	Name *string `json:"name"`
	Uids []int64 `json:"uids"`
}

func NewUserGroupItem(g *UserGroup) UserGroupItem {
	return UserGroupItem{
		ID:   Stringify(g.ID),
		Name: g.Name,
		Uids: nonNilInt64s(g.Uids),
	}
}
