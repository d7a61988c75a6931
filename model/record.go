package model

import (
	"time"

	"github.com/to404hanga/hydro_gateway/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListRecordParam struct {
	DomainParam

	Contest string `form:"contest" validate:"required,objectid"` // 比赛 ObjectId
}

var _ QueryParam = (*ListRecordParam)(nil)

func (p *ListRecordParam) ValidationMessage(field, tag string) string {
	if msg, ok := p.DomainParam.validationMessage(field, tag); ok {
		return msg
	}
	if field == "Contest" {
		if tag == "required" {
			return constants.MsgContestRequired
		}
		return constants.MsgInvalidContestID
	}
	return ""
}

// ContestID 返回已通过校验的比赛 ID
func (p *ListRecordParam) ContestID() primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(p.Contest)
	return id
}

// Record record 集合的投影
type Record struct {
	ID      bson.RawValue `bson:"_id"`
	Status  *int64        `bson:"status"`
	UID     *int64        `bson:"uid"`
	Pid     *int64        `bson:"pid"`
	Score   *float64      `bson:"score"`
	JudgeAt *time.Time    `bson:"judgeAt"`
}

var RecordProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "status", Value: 1},
	{Key: "uid", Value: 1},
	{Key: "pid", Value: 1},
	{Key: "score", Value: 1},
	{Key: "judgeAt", Value: 1},
}

var RecordRequiredFields = []string{"_id", "status", "uid", "pid", "score"}

type RecordItem struct {
	ID      string    `json:"_id"`
	JudgeAt *HTTPTime `json:"judgeAt"`
	Pid     *int64    `json:"pid"`
	Score   *float64  `json:"score"`
	Status  *int64    `json:"status"`
	UID     *int64    `json:"uid"`
}

func NewRecordItem(r *Record) RecordItem {
	return RecordItem{
		ID:      Stringify(r.ID),
		JudgeAt: NewHTTPTime(r.JudgeAt),
		Pid:     r.Pid,
		Score:   r.Score,
		Status:  r.Status,
		UID:     r.UID,
	}
}
