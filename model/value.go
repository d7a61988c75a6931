package model

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Stringify 将任意 BSON 值转成字符串, 规则与旧版网关一致:
// 字段不存在或为 null 时返回 "None", ObjectId 返回十六进制
func Stringify(v bson.RawValue) string {
	switch v.Type {
	case bsontype.Type(0), bson.TypeNull, bson.TypeUndefined:
		return "None"
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return formatFloat(v.Double())
	case bson.TypeBoolean:
		if v.Boolean() {
			return "True"
		}
		return "False"
	default:
		return v.String()
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', -1, 64) + ".0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// HTTPTime 以 HTTP 日期格式输出的时间, 例如 "Mon, 02 Jan 2006 15:04:05 GMT"
type HTTPTime time.Time

func NewHTTPTime(t *time.Time) *HTTPTime {
	if t == nil {
		return nil
	}
	ht := HTTPTime(*t)
	return &ht
}

func (t HTTPTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(http.TimeFormat) + `"`), nil
}

func (t HTTPTime) String() string {
	return time.Time(t).UTC().Format(http.TimeFormat)
}

func nonNilInt64s(s []int64) []int64 {
	if s == nil {
		return []int64{}
	}
	return s
}
