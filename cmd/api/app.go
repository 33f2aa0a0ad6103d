package main

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booklist/internal/application/library"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
	// Reset 启动时用它装载种子数据
	Reset *library.ResetLibraryUseCase
}
