package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func names(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Name
	}
	return out
}

func sampleBooks() []Book {
	return []Book{
		{ID: 1, Name: "Dune", Author: "Frank Herbert", Year: 1965, Read: true, Favorite: true, Rating: intPtr(5), Theme: strPtr("Science-Fiction")},
		{ID: 2, Name: "Le Meilleur des mondes", Author: "Aldous Huxley", Year: 1932, Rating: intPtr(4), Theme: strPtr("Dystopie")},
		{ID: 3, Name: "1984", Author: "George Orwell", Year: 1949, Read: true, Favorite: true, Rating: intPtr(5), Theme: strPtr("Dystopie")},
		{ID: 4, Name: "Élan vital", Author: "Henri Bergson", Year: 1907},
		{ID: 5, Name: "zazie dans le métro", Author: "Raymond Queneau", Year: 1959, Read: true, Rating: intPtr(3)},
	}
}

func TestSearch_Filters(t *testing.T) {
	books := sampleBooks()

	t.Run("无条件返回全部且保持顺序", func(t *testing.T) {
		assert.Equal(t, names(books), names(Search(books, Query{})))
	})

	t.Run("文本匹配书名或作者", func(t *testing.T) {
		assert.Equal(t, []string{"Dune", "Le Meilleur des mondes"}, names(Search(books, Query{Text: "U"})[:2]))
		assert.Equal(t, []string{"1984"}, names(Search(books, Query{Text: "orwell"})))
	})

	t.Run("作者精确匹配不区分大小写", func(t *testing.T) {
		assert.Equal(t, []string{"Dune"}, names(Search(books, Query{Author: "frank HERBERT"})))
		assert.Empty(t, Search(books, Query{Author: "Frank"}))
	})

	t.Run("主题匹配缺省主题视为空", func(t *testing.T) {
		assert.Equal(t, []string{"Le Meilleur des mondes", "1984"}, names(Search(books, Query{Theme: "dystopie"})))
	})

	t.Run("布尔过滤", func(t *testing.T) {
		assert.Equal(t, []string{"Dune", "1984"}, names(Search(books, Query{Favorite: boolPtr(true)})))
		assert.Equal(t, []string{"Le Meilleur des mondes", "Élan vital"}, names(Search(books, Query{Read: boolPtr(false)})))
	})

	t.Run("多个条件取交集", func(t *testing.T) {
		got := Search(books, Query{Read: boolPtr(true), Favorite: boolPtr(false)})
		assert.Equal(t, []string{"zazie dans le métro"}, names(got))
	})

	t.Run("重复查询结果一致", func(t *testing.T) {
		q := Query{Favorite: boolPtr(true)}
		assert.Equal(t, Search(books, q), Search(books, q))
	})
}

func TestSearch_Sort(t *testing.T) {
	t.Run("按书名排序忽略大小写和重音", func(t *testing.T) {
		got := Search(sampleBooks(), Query{SortKey: "title"})
		assert.Equal(t, []string{"1984", "Dune", "Élan vital", "Le Meilleur des mondes", "zazie dans le métro"}, names(got))
	})

	t.Run("desc倒序", func(t *testing.T) {
		got := Search(sampleBooks(), Query{SortKey: "title", Order: "DESC"})
		assert.Equal(t, []string{"zazie dans le métro", "Le Meilleur des mondes", "Élan vital", "Dune", "1984"}, names(got))
	})

	t.Run("年份按字符串比较", func(t *testing.T) {
		books := []Book{
			{ID: 1, Name: "nine", Year: 9},
			{ID: 2, Name: "ten", Year: 10},
		}
		got := Search(books, Query{SortKey: "year"})
		assert.Equal(t, []string{"ten", "nine"}, names(got), `"10" < "9"`)
	})

	t.Run("缺省评分排在最前", func(t *testing.T) {
		got := Search(sampleBooks(), Query{SortKey: "rating"})
		assert.Equal(t, "Élan vital", got[0].Name)
		assert.Equal(t, "zazie dans le métro", got[1].Name)
	})

	t.Run("相等的键保持原有顺序", func(t *testing.T) {
		books := []Book{
			{ID: 1, Name: "étranger"},
			{ID: 2, Name: "Etranger"},
			{ID: 3, Name: "ETRANGER"},
		}
		got := Search(books, Query{SortKey: "name"})
		assert.Equal(t, []uint{1, 2, 3}, []uint{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("未知字段不改变顺序", func(t *testing.T) {
		books := sampleBooks()
		assert.Equal(t, names(books), names(Search(books, Query{SortKey: "unknown"})))
	})

	t.Run("未指定排序时忽略order", func(t *testing.T) {
		books := sampleBooks()
		assert.Equal(t, names(books), names(Search(books, Query{Order: "desc"})))
	})

	t.Run("不修改入参", func(t *testing.T) {
		books := sampleBooks()
		_ = Search(books, Query{SortKey: "title", Order: "desc"})
		assert.Equal(t, "Dune", books[0].Name)
	})
}
