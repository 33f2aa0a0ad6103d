package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booklist/internal/application/library"
	"github.com/xiebiao/booklist/pkg/response"
)

// AdminHandler 数据重置处理器
type AdminHandler struct {
	resetUseCase *library.ResetLibraryUseCase
}

// NewAdminHandler 创建重置处理器
func NewAdminHandler(resetUseCase *library.ResetLibraryUseCase) *AdminHandler {
	return &AdminHandler{resetUseCase: resetUseCase}
}

// Reset 恢复种子数据(封面保持种子值)
// @Summary      重置数据
// @Tags         管理
// @Produce      json
// @Success      200 {object} response.MessageBody
// @Router       /reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	h.reset(c, false)
}

// ResetWithFaker 恢复种子数据并生成新的封面地址
// @Summary      重置数据(随机封面)
// @Tags         管理
// @Produce      json
// @Success      200 {object} response.MessageBody
// @Router       /resetWithFaker [post]
func (h *AdminHandler) ResetWithFaker(c *gin.Context) {
	h.reset(c, true)
}

func (h *AdminHandler) reset(c *gin.Context, freshCovers bool) {
	result, err := h.resetUseCase.Execute(c.Request.Context(), library.ResetRequest{FreshCovers: freshCovers})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, result.Message)
}
