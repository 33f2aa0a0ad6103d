package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booklist/internal/domain/book"
	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

// parseBookID 解析路径中的图书ID
// 按数值规则转换("1"、"1.0"、" 2 "都有效);不是正整数的ID不可能存在,直接返回404
func parseBookID(c *gin.Context) (uint, error) {
	n := book.ToNumber(strings.TrimSpace(c.Param("id")))
	if math.IsNaN(n) || n < 1 || n != math.Trunc(n) || n > math.MaxUint32 {
		return 0, book.ErrBookNotFound
	}
	return uint(n), nil
}

// bindPayload 读取JSON对象请求体
// 空请求体视为{};不是合法JSON对象时返回参数绑定错误
func bindPayload(c *gin.Context) (map[string]any, error) {
	payload := map[string]any{}
	if c.Request.Body == nil {
		return payload, nil
	}

	err := json.NewDecoder(c.Request.Body).Decode(&payload)
	switch {
	case err == nil:
		if payload == nil {
			payload = map[string]any{}
		}
		return payload, nil
	case errors.Is(err, io.EOF):
		return map[string]any{}, nil
	default:
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeBindError, apperrors.ErrBindError.Message)
	}
}

// queryPtr 查询参数,未提供时为nil
func queryPtr(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &v
}
