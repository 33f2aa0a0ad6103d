package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booklist/internal/application/book"
	"github.com/xiebiao/booklist/internal/interface/http/dto"
	"github.com/xiebiao/booklist/pkg/response"
)

// StatsHandler 统计处理器
type StatsHandler struct {
	getStatsUseCase *appbook.GetStatsUseCase
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(getStatsUseCase *appbook.GetStatsUseCase) *StatsHandler {
	return &StatsHandler{getStatsUseCase: getStatsUseCase}
}

// GetStats 统计信息
// @Summary      统计信息
// @Description  averageRating只统计有评分的图书,保留两位小数
// @Tags         统计
// @Produce      json
// @Success      200 {object} dto.StatsResponse
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewStatsResponse(stats))
}
