package note

import (
	"strings"
	"time"
)

// ISOLayout 笔记时间的字符串格式(UTC,毫秒精度)
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Note 读书笔记实体
// 笔记从属于图书:只能通过图书创建,随图书删除而级联删除
type Note struct {
	ID        uint
	BookID    uint
	Content   string
	CreatedAt time.Time
}

// NewNote 创建笔记(工厂方法)
// 内容去掉首尾空白后不能为空
func NewNote(bookID uint, content string, now time.Time) (*Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Note{
		BookID:    bookID,
		Content:   content,
		CreatedAt: now.UTC(),
	}, nil
}

// DateISO 创建时间的ISO-8601形式
func (n Note) DateISO() string {
	return n.CreatedAt.UTC().Format(ISOLayout)
}
