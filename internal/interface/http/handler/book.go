package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booklist/internal/application/book"
	"github.com/xiebiao/booklist/internal/interface/http/dto"
	"github.com/xiebiao/booklist/pkg/response"
)

// DeleteBookMessage 删除成功提示
const DeleteBookMessage = "Livre supprimé avec succès"

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  过滤条件为AND关系;sort按字段的字符串形式做法语排序(数值字段按字符串比较);不分页
// @Tags         图书
// @Produce      json
// @Param        query query dto.ListBooksQuery false "查询参数"
// @Success      200 {array} dto.BookResponse
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Q:        c.Query("q"),
		Author:   c.Query("author"),
		Theme:    c.Query("theme"),
		Read:     queryPtr(c, "read"),
		Favorite: queryPtr(c, "favorite"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookList(books))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "Livre introuvable"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// CreateBook 新增图书
// @Summary      新增图书
// @Description  name、author、editor必填,year必须是数值
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookPayload true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Champs requis"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.createBookUseCase.Execute(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  未提供的字段保留原值,合并后的记录仍需满足必填规则
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookPayload true "要修改的字段"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "Champs requis"
// @Failure      404 {object} response.ErrorBody "Livre introuvable"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:      id,
		Payload: payload,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBookResponse(b))
}

// DeleteBook 删除图书(同时删除其笔记)
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Livre introuvable"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, DeleteBookMessage)
}
