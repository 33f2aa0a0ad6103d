package note

import (
	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

// 笔记领域错误定义
var (
	// ErrEmptyContent 笔记内容为空
	ErrEmptyContent = apperrors.New(apperrors.ErrCodeEmptyContent, `Le champ "content" est requis.`)
)
