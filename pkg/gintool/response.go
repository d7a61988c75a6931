package gintool

import (
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON 以 application/json 输出响应体
func JSON(c *gin.Context, code int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		c.Error(err)
		b, _ = json.Marshal(ErrorResponse{Error: err.Error()})
		code = http.StatusInternalServerError
	}
	c.Data(code, binding.MIMEJSON, b)
}

// Error 输出 {"error": msg}
func Error(c *gin.Context, code int, msg string) {
	JSON(c, code, ErrorResponse{Error: msg})
}
