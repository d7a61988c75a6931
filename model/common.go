package model

import (
	"errors"
	"fmt"

	"github.com/to404hanga/hydro_gateway/constants"
	"go.mongodb.org/mongo-driver/bson"
)

// QueryParam 查询参数, 由 gintool 绑定并校验
type QueryParam interface {
	// ValidationMessage 返回字段校验失败时返回给调用方的提示
	ValidationMessage(field, tag string) string
}

// DomainParam 按 domainId 划分的查询参数
type DomainParam struct {
	DomainID string `form:"domainId" validate:"required"` // 域 ID
}

func (p *DomainParam) validationMessage(field, tag string) (string, bool) {
	if field == "DomainID" && tag == "required" {
		return constants.MsgDomainIDRequired, true
	}
	return "", false
}

// MissingFieldError 文档缺少必需字段
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// RequireFields 检查原始文档中是否存在所有必需字段, 字段值可以为 null
func RequireFields(raw bson.Raw, keys ...string) error {
	for _, key := range keys {
		if _, err := raw.LookupErr(key); err != nil {
			return &MissingFieldError{Field: key}
		}
	}
	return nil
}

// IsMissingField 判断是否为缺少字段错误
func IsMissingField(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}
