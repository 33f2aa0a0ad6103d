package dto

import (
	"github.com/xiebiao/booklist/internal/domain/book"
)

// BookPayload 新增/更新图书的请求体(仅用于接口文档)
// 实际按松散类型解析:year接受数字或数字字符串,read/favorite接受布尔或"true"/"false",
// rating四舍五入并限制在0-5,非数值清空评分
type BookPayload struct {
	Name     string  `json:"name" example:"Dune"`
	Author   string  `json:"author" example:"Frank Herbert"`
	Editor   string  `json:"editor" example:"Chilton Books"`
	Year     int     `json:"year" example:"1965"`
	Read     bool    `json:"read" example:"true"`
	Favorite bool    `json:"favorite" example:"true"`
	Rating   *int    `json:"rating" example:"5"`
	Cover    *string `json:"cover" example:"https://loremflickr.com/400/600/books?lock=42"`
	Theme    *string `json:"theme" example:"Science-Fiction"`
}

// BookResponse 图书响应
// rating/cover/theme缺省时输出null
type BookResponse struct {
	ID       uint    `json:"id" example:"1"`
	Name     string  `json:"name" example:"Dune"`
	Author   string  `json:"author" example:"Frank Herbert"`
	Editor   string  `json:"editor" example:"Chilton Books"`
	Year     int     `json:"year" example:"1965"`
	Read     bool    `json:"read" example:"true"`
	Favorite bool    `json:"favorite" example:"true"`
	Rating   *int    `json:"rating" example:"5"`
	Cover    *string `json:"cover" example:"https://loremflickr.com/400/600/books?lock=42"`
	Theme    *string `json:"theme" example:"Science-Fiction"`
}

// NewBookResponse 实体 → 响应
func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Name:     b.Name,
		Author:   b.Author,
		Editor:   b.Editor,
		Year:     b.Year,
		Read:     b.Read,
		Favorite: b.Favorite,
		Rating:   b.Rating,
		Cover:    b.Cover,
		Theme:    b.Theme,
	}
}

// NewBookList 列表响应,空结果输出[]而不是null
func NewBookList(books []book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i := range books {
		out[i] = NewBookResponse(&books[i])
	}
	return out
}

// ListBooksQuery 列表查询参数(仅用于接口文档,handler通过GetQuery读取以区分"未提供"和空值)
type ListBooksQuery struct {
	Q        string `form:"q" example:"dune"`
	Author   string `form:"author" example:"Frank Herbert"`
	Read     string `form:"read" example:"true"`
	Favorite string `form:"favorite" example:"false"`
	Theme    string `form:"theme" example:"Dystopie"`
	Sort     string `form:"sort" example:"title"` // title|author|theme|year|rating,其他值按字段名
	Order    string `form:"order" example:"desc"` // asc|desc
}

// StatsResponse 统计响应
type StatsResponse struct {
	TotalBooks     int     `json:"totalBooks" example:"10"`
	ReadCount      int     `json:"readCount" example:"6"`
	UnreadCount    int     `json:"unreadCount" example:"4"`
	FavoritesCount int     `json:"favoritesCount" example:"5"`
	AverageRating  float64 `json:"averageRating" example:"4.5"`
}

// NewStatsResponse 统计值 → 响应
func NewStatsResponse(s book.Stats) StatsResponse {
	return StatsResponse{
		TotalBooks:     s.TotalBooks,
		ReadCount:      s.ReadCount,
		UnreadCount:    s.UnreadCount,
		FavoritesCount: s.FavoritesCount,
		AverageRating:  s.AverageRating,
	}
}
