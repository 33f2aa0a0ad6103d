package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，HTTPStatus()负责映射到HTTP状态码
// 2. Message是返回给客户端的提示信息（法语文案，前端直接展示）
// 3. Err是内部错误，仅记录到日志；只有上游故障会把Details暴露给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，Wrap出来的新实例也能匹配预定义错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus 业务错误码 → HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	case e.Code >= 40000 && e.Code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Details 返回可以暴露给客户端的错误细节
// 只有上游故障（对象存储）才返回，其余错误不泄露内部信息
func (e *AppError) Details() string {
	if e.Code != ErrCodeStorageError || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误为内部错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode 以指定错误码包装底层错误
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 校验失败（必填字段、空内容、上传类型）
// - 404xx: 资源不存在
// - 409xx: 参数绑定失败（仍映射为400）
// - 5xxxx: 服务端错误（内部错误、对象存储）

const (
	ErrCodeInternal     = 50000 // 内部错误
	ErrCodeStorageError = 50003 // 对象存储写入失败

	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound = 40402 // 图书不存在

	ErrCodeMissingFields   = 40010 // 图书必填字段缺失
	ErrCodeEmptyContent    = 40011 // 笔记内容为空
	ErrCodeNoFile          = 40020 // 未提供上传文件
	ErrCodeUnsupportedType = 40021 // 文件类型不允许
	ErrCodeFileTooLarge    = 40022 // 文件超过大小限制

	ErrCodeBindError = 40901 // 参数绑定失败
)

var (
	ErrInternal  = New(ErrCodeInternal, "Erreur interne du serveur")
	ErrNotFound  = New(ErrCodeNotFound, "Ressource introuvable")
	ErrBindError = New(ErrCodeBindError, "Corps de requête invalide")
)

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Message)
}
