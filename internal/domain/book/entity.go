package book

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由仓储在创建时分配,之后不可变
// 2. Rating/Cover/Theme允许缺省,用nil表示(与0、空字符串区分)
// 3. 实体本身不做校验,进入仓储前必须经过Normalize + Validate
type Book struct {
	ID       uint
	Name     string
	Author   string
	Editor   string
	Year     int
	Read     bool
	Favorite bool
	Rating   *int    // 0-5,nil表示未评分
	Cover    *string // 封面URL
	Theme    *string // 主题/分类
}

// Clone 深拷贝(指针字段也复制),用于仓储返回快照
func (b Book) Clone() Book {
	out := b
	if b.Rating != nil {
		r := *b.Rating
		out.Rating = &r
	}
	out.Cover = cloneString(b.Cover)
	out.Theme = cloneString(b.Theme)
	return out
}

// SetCover 替换封面URL
func (b *Book) SetCover(url string) {
	b.Cover = &url
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
