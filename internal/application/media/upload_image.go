package media

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/xiebiao/booklist/internal/infrastructure/config"
	apperrors "github.com/xiebiao/booklist/pkg/errors"
	"github.com/xiebiao/booklist/pkg/metrics"
)

// SuccessMessage 上传成功提示
const SuccessMessage = "Image uploadée avec succès"

// allowedTypes 允许的图片类型
var allowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ObjectStorage 对象存储端口
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(key string) string
}

// UploadImageUseCase 封面图片上传用例
// 设计说明:
// 1. 文件类型由内容嗅探决定,不信任客户端声明的Content-Type
// 2. 对象名为<uuid>.<扩展名>,扩展名取自原文件名(没有时用jpg)
// 3. 只与对象存储交互,不读写内存中的图书数据
type UploadImageUseCase struct {
	storage ObjectStorage
	maxSize int64
}

// NewUploadImageUseCase 创建上传用例
func NewUploadImageUseCase(storage ObjectStorage, cfg *config.Config) *UploadImageUseCase {
	return &UploadImageUseCase{
		storage: storage,
		maxSize: cfg.Storage.MaxUploadSize,
	}
}

// UploadImageRequest 上传请求DTO
type UploadImageRequest struct {
	FileName string    // 客户端提供的原文件名
	Size     int64     // 声明的大小,<0表示未知
	Body     io.Reader // 文件内容
}

// UploadImageResponse 上传结果
type UploadImageResponse struct {
	Message  string
	URL      string
	FileName string
}

// MaxSize 允许的最大字节数
func (uc *UploadImageUseCase) MaxSize() int64 {
	return uc.maxSize
}

// Execute 执行上传
func (uc *UploadImageUseCase) Execute(ctx context.Context, req UploadImageRequest) (*UploadImageResponse, error) {
	if req.Body == nil {
		metrics.ObserveUpload("rejected", -1)
		return nil, ErrNoFile
	}

	// 1. 大小校验(多读一个字节判断是否超限)
	if req.Size > uc.maxSize {
		metrics.ObserveUpload("rejected", req.Size)
		return nil, ErrFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(req.Body, uc.maxSize+1))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Message)
	}
	size := int64(len(data))
	if size > uc.maxSize {
		metrics.ObserveUpload("rejected", size)
		return nil, ErrFileTooLarge
	}

	// 2. 类型嗅探
	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		metrics.ObserveUpload("rejected", size)
		slog.InfoContext(ctx, "upload rejected", "detected_type", mtype.String(), "file_name", req.FileName)
		return nil, ErrUnsupportedType
	}

	// 3. 写入对象存储
	fileName := uuid.NewString() + "." + extension(req.FileName)
	if err := uc.storage.Put(ctx, fileName, bytes.NewReader(data), mtype.String()); err != nil {
		metrics.ObserveUpload("failure", size)
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeStorageError, uploadFailedMessage)
	}

	metrics.ObserveUpload("success", size)
	slog.InfoContext(ctx, "image uploaded", "file_name", fileName, "size", size, "content_type", mtype.String())
	return &UploadImageResponse{
		Message:  SuccessMessage,
		URL:      uc.storage.PublicURL(fileName),
		FileName: fileName,
	}, nil
}

// extension 原文件名的扩展名(不含点),没有时为jpg
func extension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(name)), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}
