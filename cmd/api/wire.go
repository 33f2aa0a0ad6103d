//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链:
// *gin.Engine → router.Handlers → Handler → UseCase → Service → Repository → *memory.DB
// 上传链路:  UploadHandler → UploadImageUseCase → media.ObjectStorage(*storage.Guarded) → GCS

package main

import (
	"context"

	"github.com/google/wire"

	appbook "github.com/xiebiao/booklist/internal/application/book"
	"github.com/xiebiao/booklist/internal/application/library"
	"github.com/xiebiao/booklist/internal/application/media"
	appnote "github.com/xiebiao/booklist/internal/application/note"
	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
	"github.com/xiebiao/booklist/internal/infrastructure/config"
	"github.com/xiebiao/booklist/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/booklist/internal/infrastructure/placeholder"
	"github.com/xiebiao/booklist/internal/infrastructure/storage"
	"github.com/xiebiao/booklist/internal/interface/http/handler"
	"github.com/xiebiao/booklist/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 内存数据库、封面生成器、对象存储(带熔断)
var infrastructureSet = wire.NewSet(
	memory.NewDB,
	placeholder.NewCoverGenerator,
	storage.New,
	wire.Bind(new(library.CoverSource), new(*placeholder.CoverGenerator)),
	wire.Bind(new(media.ObjectStorage), new(*storage.Guarded)),
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	memory.NewBookRepository,
	memory.NewNoteRepository,
	memory.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	note.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewGetStatsUseCase,
	appnote.NewListNotesUseCase,
	appnote.NewAddNoteUseCase,
	library.NewResetLibraryUseCase,
	media.NewUploadImageUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewNoteHandler,
	handler.NewStatsHandler,
	handler.NewAdminHandler,
	handler.NewUploadHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 初始化整个应用
// 配置由main提前加载(日志和追踪需要先于其他组件初始化),作为参数传入。
// cleanup负责关闭对象存储客户端。
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
