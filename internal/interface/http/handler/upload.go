package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booklist/internal/application/media"
	"github.com/xiebiao/booklist/internal/interface/http/dto"
	apperrors "github.com/xiebiao/booklist/pkg/errors"
	"github.com/xiebiao/booklist/pkg/response"
)

// uploadField multipart表单中的文件字段
const uploadField = "image"

// UploadHandler 图片上传处理器
type UploadHandler struct {
	uploadImageUseCase *media.UploadImageUseCase
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(uploadImageUseCase *media.UploadImageUseCase) *UploadHandler {
	return &UploadHandler{uploadImageUseCase: uploadImageUseCase}
}

// UploadImage 上传封面图片
// @Summary      上传封面图片
// @Description  multipart字段image,只接受jpeg/png/gif/webp(按内容识别),大小上限默认5MB
// @Tags         上传
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "图片文件"
// @Success      201 {object} dto.UploadResponse
// @Failure      400 {object} response.ErrorBody "Aucun fichier fourni / Type de fichier non autorisé"
// @Failure      500 {object} response.ErrorBody "Erreur lors de l'upload du fichier"
// @Router       /upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	// 限制请求体大小,为multipart边界和其他字段预留1MB
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadImageUseCase.MaxSize()+1<<20)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			response.Error(c, media.ErrFileTooLarge)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			response.Error(c, media.ErrNoFile)
		default:
			response.Error(c, apperrors.WrapCode(err, apperrors.ErrCodeNoFile, media.ErrNoFile.Message))
		}
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrInternal.Message))
		return
	}
	defer file.Close()

	result, err := h.uploadImageUseCase.Execute(c.Request.Context(), media.UploadImageRequest{
		FileName: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.UploadResponse{
		Message:  result.Message,
		URL:      result.URL,
		FileName: result.FileName,
	})
}
