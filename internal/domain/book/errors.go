package book

import (
	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Livre introuvable")

	// ErrMissingRequiredFields 必填字段缺失或年份不是有限数值
	ErrMissingRequiredFields = apperrors.New(apperrors.ErrCodeMissingFields, "Champs requis: name, author, editor, year (numérique).")
)
