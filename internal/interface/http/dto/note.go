package dto

import (
	"github.com/xiebiao/booklist/internal/domain/note"
)

// AddNoteRequest 添加笔记请求体
type AddNoteRequest struct {
	Content string `json:"content" example:"Très dense mais fascinant."`
}

// NoteResponse 笔记响应
type NoteResponse struct {
	ID      uint   `json:"id" example:"1"`
	BookID  uint   `json:"bookId" example:"1"`
	Content string `json:"content" example:"Très dense mais fascinant."`
	DateISO string `json:"dateISO" example:"2024-05-12T00:00:00.000Z"`
}

// NewNoteResponse 实体 → 响应
func NewNoteResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:      n.ID,
		BookID:  n.BookID,
		Content: n.Content,
		DateISO: n.DateISO(),
	}
}

// NewNoteList 列表响应,空结果输出[]
func NewNoteList(notes []note.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i := range notes {
		out[i] = NewNoteResponse(&notes[i])
	}
	return out
}
