// Package placeholder 占位封面图地址生成
package placeholder

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/xiebiao/booklist/internal/infrastructure/config"
)

// CoverGenerator 生成随机封面URL
// 格式: <base>/<width>/<height>/<category>?lock=<n>
// lock参数固定图片,同一个URL每次访问返回同一张图
type CoverGenerator struct {
	baseURL  string
	width    int
	height   int
	category string
	next     func() uint32
}

// NewCoverGenerator 创建生成器
func NewCoverGenerator(cfg *config.Config) *CoverGenerator {
	return &CoverGenerator{
		baseURL:  strings.TrimSuffix(cfg.Cover.BaseURL, "/"),
		width:    cfg.Cover.Width,
		height:   cfg.Cover.Height,
		category: cfg.Cover.Category,
		next:     rand.Uint32,
	}
}

// CoverURL 返回一个新的封面地址
func (g *CoverGenerator) CoverURL() string {
	return fmt.Sprintf("%s/%d/%d/%s?lock=%d", g.baseURL, g.width, g.height, g.category, g.next()%1_000_000)
}
