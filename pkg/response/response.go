package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

// ErrorBody 错误响应结构
// 格式：{"error": "..."}，上游故障额外带details
type ErrorBody struct {
	Error   string `json:"error" example:"Livre introuvable"`
	Details string `json:"details,omitempty" example:"connection refused"`
}

// MessageBody 操作成功的消息信封
type MessageBody struct {
	Message string `json:"message" example:"Livre supprimé avec succès"`
}

// OK 200响应，直接返回实体（不再包一层code/data）
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 + {"message": ...}
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := bookService.GetBook(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误记录到日志，并挂到gin.Context上供日志中间件输出
	if appErr.Err != nil {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"code", appErr.Code,
			"status", status,
			"error", appErr.Err,
		)
	}
	_ = c.Error(appErr)

	c.JSON(status, ErrorBody{
		Error:   appErr.Message,
		Details: appErr.Details(),
	})
}
