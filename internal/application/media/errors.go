package media

import (
	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

// 上传相关错误定义
var (
	// ErrNoFile 请求中没有image字段
	ErrNoFile = apperrors.New(apperrors.ErrCodeNoFile, "Aucun fichier fourni")

	// ErrUnsupportedType 文件内容不是允许的图片格式
	ErrUnsupportedType = apperrors.New(apperrors.ErrCodeUnsupportedType, "Type de fichier non autorisé. Seules les images sont acceptées.")

	// ErrFileTooLarge 文件超过大小上限
	ErrFileTooLarge = apperrors.New(apperrors.ErrCodeFileTooLarge, "Fichier trop volumineux.")
)

// uploadFailedMessage 对象存储写入失败时返回给客户端的提示,细节放在details中
const uploadFailedMessage = "Erreur lors de l'upload du fichier"
