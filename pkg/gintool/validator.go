package gintool

import (
	"github.com/go-playground/validator/v10"
	"github.com/to404hanga/hydro_gateway/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewValidator 创建校验器并注册自定义规则:
// objectid 24 位十六进制 ObjectId, digits 仅包含 ASCII 数字, doctype 合法的文档类型
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	})
	_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseDocType(fl.Field().String())
		return ok
	}, true)
	return v
}
