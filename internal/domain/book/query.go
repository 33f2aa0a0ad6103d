package book

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query 列表查询条件
// 所有过滤条件为AND关系;指针为nil表示不过滤
type Query struct {
	Text     string // 在书名或作者中做不区分大小写的子串匹配
	Author   string // 作者精确匹配(不区分大小写)
	Theme    string // 主题精确匹配(不区分大小写)
	Read     *bool
	Favorite *bool
	SortKey  string // title|author|theme|year|rating,其他值按字段名处理
	Order    string // desc倒序,其他值升序
}

// sortAliases 排序键别名
var sortAliases = map[string]string{
	"title":  "name",
	"author": "author",
	"theme":  "theme",
	"year":   "year",
	"rating": "rating",
}

// Search 对快照执行过滤与排序,返回新切片,不修改入参
func Search(books []Book, q Query) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if q.matches(b) {
			out = append(out, b)
		}
	}

	if q.SortKey == "" {
		return out
	}

	sortBooks(out, resolveSortKey(q.SortKey))
	if strings.EqualFold(q.Order, "desc") {
		slices.Reverse(out)
	}
	return out
}

func (q Query) matches(b Book) bool {
	if q.Text != "" {
		s := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(b.Name), s) && !strings.Contains(strings.ToLower(b.Author), s) {
			return false
		}
	}
	if q.Author != "" && strings.ToLower(b.Author) != strings.ToLower(q.Author) {
		return false
	}
	if q.Read != nil && b.Read != *q.Read {
		return false
	}
	if q.Favorite != nil && b.Favorite != *q.Favorite {
		return false
	}
	if q.Theme != "" && strings.ToLower(deref(b.Theme)) != strings.ToLower(q.Theme) {
		return false
	}
	return true
}

func resolveSortKey(key string) string {
	if field, ok := sortAliases[key]; ok {
		return field
	}
	return key
}

// sortBooks 稳定排序
// 比较的是字段的字符串形式,数值字段也按字符串比较(year 10 排在 9 之前)。
// 排序规则为法语、只区分基本字符:忽略大小写与重音。
func sortBooks(books []Book, field string) {
	type keyed struct {
		key  string
		book Book
	}
	items := make([]keyed, len(books))
	for i, b := range books {
		items[i] = keyed{key: sortValue(b, field), book: b}
	}

	// collate.Collator不是并发安全的,每次排序单独创建
	col := collate.New(language.French, collate.Loose)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(items[i].key, items[j].key) < 0
	})

	for i := range items {
		books[i] = items[i].book
	}
}

// sortValue 字段的字符串形式
// 缺省值以及0、false、空串都视为""
func sortValue(b Book, field string) string {
	switch field {
	case "id":
		return itoaNonZero(int(b.ID))
	case "name":
		return b.Name
	case "author":
		return b.Author
	case "editor":
		return b.Editor
	case "year":
		return itoaNonZero(b.Year)
	case "read":
		return boolText(b.Read)
	case "favorite":
		return boolText(b.Favorite)
	case "rating":
		if b.Rating == nil {
			return ""
		}
		return itoaNonZero(*b.Rating)
	case "cover":
		return deref(b.Cover)
	case "theme":
		return deref(b.Theme)
	default:
		return ""
	}
}

func itoaNonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func boolText(v bool) string {
	if v {
		return "true"
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
