package handler

import (
	"github.com/gin-gonic/gin"

	appnote "github.com/xiebiao/booklist/internal/application/note"
	"github.com/xiebiao/booklist/internal/interface/http/dto"
	"github.com/xiebiao/booklist/pkg/response"
)

// NoteHandler 笔记HTTP处理器
type NoteHandler struct {
	listNotesUseCase *appnote.ListNotesUseCase
	addNoteUseCase   *appnote.AddNoteUseCase
}

// NewNoteHandler 创建笔记处理器
func NewNoteHandler(listNotesUseCase *appnote.ListNotesUseCase, addNoteUseCase *appnote.AddNoteUseCase) *NoteHandler {
	return &NoteHandler{
		listNotesUseCase: listNotesUseCase,
		addNoteUseCase:   addNoteUseCase,
	}
}

// ListNotes 图书的笔记
// @Summary      图书的笔记
// @Tags         笔记
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {array}  dto.NoteResponse
// @Failure      404 {object} response.ErrorBody "Livre introuvable"
// @Router       /books/{id}/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	notes, err := h.listNotesUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewNoteList(notes))
}

// AddNote 添加笔记
// @Summary      添加笔记
// @Description  content去除首尾空白后不能为空;图书不存在时优先返回404
// @Tags         笔记
// @Accept       json
// @Produce      json
// @Param        id      path int                true "图书ID"
// @Param        request body dto.AddNoteRequest true "笔记内容"
// @Success      201 {object} dto.NoteResponse
// @Failure      400 {object} response.ErrorBody "Le champ \"content\" est requis."
// @Failure      404 {object} response.ErrorBody "Livre introuvable"
// @Router       /books/{id}/notes [post]
func (h *NoteHandler) AddNote(c *gin.Context) {
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

	n, err := h.addNoteUseCase.Execute(c.Request.Context(), appnote.AddNoteRequest{
		BookID:  id,
		Payload: payload,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewNoteResponse(n))
}
