package note

import (
	"context"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
	"github.com/xiebiao/booklist/pkg/metrics"
)

// ListNotesUseCase 图书笔记列表用例
type ListNotesUseCase struct {
	noteService note.Service
}

// NewListNotesUseCase 创建笔记列表用例
func NewListNotesUseCase(noteService note.Service) *ListNotesUseCase {
	return &ListNotesUseCase{noteService: noteService}
}

// Execute 返回图书的全部笔记,图书不存在返回404
func (uc *ListNotesUseCase) Execute(ctx context.Context, bookID uint) ([]note.Note, error) {
	return uc.noteService.ListNotes(ctx, bookID)
}

// AddNoteUseCase 添加笔记用例
type AddNoteUseCase struct {
	noteService note.Service
}

// NewAddNoteUseCase 创建添加笔记用例
func NewAddNoteUseCase(noteService note.Service) *AddNoteUseCase {
	return &AddNoteUseCase{noteService: noteService}
}

// AddNoteRequest 添加笔记请求DTO
// Payload是原始请求体,content非字符串时按文本规则转换(数字取字面形式,对象视为空)
type AddNoteRequest struct {
	BookID  uint
	Payload map[string]any
}

// Execute 执行添加
func (uc *AddNoteUseCase) Execute(ctx context.Context, req AddNoteRequest) (*note.Note, error) {
	n, err := uc.noteService.AddNote(ctx, req.BookID, book.ToText(req.Payload["content"]))
	if err != nil {
		return nil, err
	}
	metrics.IncNotesCreated()
	return n, nil
}
