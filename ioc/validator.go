package ioc

import (
	"github.com/go-playground/validator/v10"
	"github.com/to404hanga/hydro_gateway/pkg/gintool"
)

func InitValidator() *validator.Validate {
	return gintool.NewValidator()
}
