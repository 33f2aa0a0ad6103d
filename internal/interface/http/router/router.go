package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/booklist/docs" // swagger文档
	"github.com/xiebiao/booklist/internal/infrastructure/config"
	"github.com/xiebiao/booklist/internal/interface/http/handler"
	"github.com/xiebiao/booklist/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/booklist/pkg/errors"
	"github.com/xiebiao/booklist/pkg/response"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Book   *handler.BookHandler
	Note   *handler.NoteHandler
	Stats  *handler.StatsHandler
	Admin  *handler.AdminHandler
	Upload *handler.UploadHandler
}

// New 创建Gin引擎并注册路由
func New(cfg *config.Config, h *Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.Error(c, apperrors.ErrInternal)
		c.Abort()
	}))
	r.Use(middleware.Logger(), middleware.Tracing(), middleware.CORS(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档: /swagger/index.html
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 图书
	books := r.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.POST("", h.Book.CreateBook)
		books.GET("/:id", h.Book.GetBook)
		books.PUT("/:id", h.Book.UpdateBook)
		books.DELETE("/:id", h.Book.DeleteBook)

		// 笔记
		books.GET("/:id/notes", h.Note.ListNotes)
		books.POST("/:id/notes", h.Note.AddNote)
	}

	r.GET("/stats", h.Stats.GetStats)

	// 数据重置
	r.POST("/reset", h.Admin.Reset)
	r.POST("/resetWithFaker", h.Admin.ResetWithFaker)

	// 图片上传
	r.POST("/upload", h.Upload.UploadImage)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})

	return r
}
