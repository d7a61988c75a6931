package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/to404hanga/hydro_gateway/constants"
	"go.mongodb.org/mongo-driver/bson"
)

type DocType int

const (
	DocTypeProblem DocType = 10 // 题目
	DocTypeContest DocType = 30 // 比赛
)

// ParseDocType 解析 docType, 只有题目和比赛是合法值
func ParseDocType(s string) (DocType, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	switch dt := DocType(n); dt {
	case DocTypeProblem, DocTypeContest:
		return dt, true
	default:
		return dt, false
	}
}

type ListDocumentParam struct {
	DomainParam

	DocType string `form:"docType" validate:"doctype"` // 文档类型, 10: 题目, 30: 比赛
}

var _ QueryParam = (*ListDocumentParam)(nil)

func (p *ListDocumentParam) ValidationMessage(field, tag string) string {
	if msg, ok := p.DomainParam.validationMessage(field, tag); ok {
		return msg
	}
	if field == "DocType" {
		return constants.MsgInvalidDocType
	}
	return ""
}

// Type 返回已通过校验的 docType
func (p *ListDocumentParam) Type() DocType {
	dt, _ := ParseDocType(p.DocType)
	return dt
}

// ContestDocument document 集合中 docType=30 的投影
type ContestDocument struct {
	ID      bson.RawValue `bson:"_id"`
	DocID   bson.RawValue `bson:"docId"` // 可能是 ObjectId 也可能是数字
	Title   *string       `bson:"title"`
	BeginAt *time.Time    `bson:"beginAt"`
	Pids    []int64       `bson:"pids"`
}

// ContestProjection 比赛查询的投影字段
var ContestProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "docId", Value: 1},
	{Key: "title", Value: 1},
	{Key: "beginAt", Value: 1},
	{Key: "pids", Value: 1},
}

// ContestRequiredFields 比赛文档中必须存在的字段
var ContestRequiredFields = []string{"_id", "title"}

// ContestItem 比赛列表项, 字段按 key 排序与旧版输出保持一致
type ContestItem struct {
	ID      string    `json:"_id"`
	BeginAt *HTTPTime `json:"beginAt"`
	DocID   string    `json:"docId"`
	Pids    []int64   `json:"pids"`
	Title   *string   `json:"title"`
}

func NewContestItem(doc *ContestDocument) ContestItem {
	return ContestItem{
		ID:      Stringify(doc.ID),
		BeginAt: NewHTTPTime(doc.BeginAt),
		DocID:   Stringify(doc.DocID),
		Pids:    nonNilInt64s(doc.Pids),
		Title:   doc.Title,
	}
}

// ProblemDocument document 集合中 docType=10 的投影
type ProblemDocument struct {
	ID     bson.RawValue `bson:"_id"`
	DocID  any           `bson:"docId"` // 原样返回, 不转换为字符串
	Title  *string       `bson:"title"`
	Pid    *string       `bson:"pid"`
	Config *string       `bson:"config"` // yaml 格式的评测配置
}

var ProblemProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "docId", Value: 1},
	{Key: "title", Value: 1},
	{Key: "pid", Value: 1},
	{Key: "config", Value: 1},
}

var ProblemRequiredFields = []string{"_id", "docId", "title", "pid", "config"}

// ProblemItem 题目列表项, config 无法解析时 Score 为 0 且 Error 非空
type ProblemItem struct {
	ID    string  `json:"_id"`
	DocID any     `json:"docId"`
	Error string  `json:"error,omitempty"`
	Pid   *string `json:"pid"`
	Score float64 `json:"score"`
	Title *string `json:"title"`
}

func NewProblemItem(doc *ProblemDocument, score float64) ProblemItem {
	return ProblemItem{
		ID:    Stringify(doc.ID),
		DocID: doc.DocID,
		Pid:   doc.Pid,
		Score: score,
		Title: doc.Title,
	}
}
