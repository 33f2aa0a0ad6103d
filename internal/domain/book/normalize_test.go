package book

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestClampRating(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *int
	}{
		{"超过上限截断为5", float64(8), intPtr(5)},
		{"负数截断为0", float64(-3), intPtr(0)},
		{"非数字字符串为空", "abc", nil},
		{"null为空", nil, nil},
		{"四舍五入", 3.5, intPtr(4)},
		{"向下取整", 2.49, intPtr(2)},
		{"数字字符串", " 4 ", intPtr(4)},
		{"空串视为0", "", intPtr(0)},
		{"布尔true视为1", true, intPtr(1)},
		{"对象视为非数值", map[string]any{"a": 1}, nil},
		{"json.Number", json.Number("4.6"), intPtr(5)},
		{"inf不是数值", "inf", nil},
		{"nan不是数值", "nan", nil},
		{"下划线分隔不是数值", "1_0", nil},
		{"十六进制浮点不是数值", "0x1p2", nil},
		{"Infinity截断为5", "Infinity", intPtr(5)},
		{"-Infinity截断为0", "-Infinity", intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampRating(tt.input))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		input any
		want  bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"yes", false},
		{"1", false},
		{"", false},
		{float64(1), true},
		{float64(0), false},
		{math.NaN(), false},
		{nil, false},
		{map[string]any{}, true},
		{[]any{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.input), "ToBool(%#v)", tt.input)
	}
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 1965.0, ToNumber("1965"))
	assert.Equal(t, 1965.0, ToNumber(float64(1965)))
	assert.Equal(t, 0.0, ToNumber("  "))
	assert.Equal(t, 26.0, ToNumber("0x1A"))
	assert.Equal(t, 1.0, ToNumber(true))
	assert.True(t, math.IsNaN(ToNumber("19six5")))
	assert.Equal(t, 0.5, ToNumber(".5"))
	assert.Equal(t, 1500.0, ToNumber("1.5e3"))
	assert.Equal(t, 8.0, ToNumber("0o10"))
	assert.Equal(t, 5.0, ToNumber("0b101"))
	assert.True(t, math.IsInf(ToNumber("Infinity"), 1))
	assert.True(t, math.IsInf(ToNumber("-Infinity"), -1))
	assert.True(t, math.IsInf(ToNumber("1e400"), 1))

	for _, s := range []string{"inf", "+inf", "-Inf", "infinity", "NaN", "nan", "1_0", "0x1_0", "0x1p2", "-0x10", "+", ".", "e5"} {
		assert.True(t, math.IsNaN(ToNumber(s)), "ToNumber(%q)", s)
	}
	assert.True(t, math.IsNaN(ToNumber([]any{1})))
}

func TestParseInput(t *testing.T) {
	in := ParseInput(map[string]any{
		"name":     "Dune",
		"author":   "Frank Herbert",
		"editor":   nil, // null等同于未提供
		"year":     "1965",
		"read":     "TRUE",
		"favorite": float64(0),
		"rating":   "abc",
		"cover":    float64(42),
	})

	require.NotNil(t, in.Name)
	assert.Equal(t, "Dune", *in.Name)
	assert.Nil(t, in.Editor)
	require.NotNil(t, in.Year)
	assert.Equal(t, 1965.0, *in.Year)
	assert.True(t, *in.Read)
	assert.False(t, *in.Favorite)
	assert.True(t, in.RatingSet, "出现rating字段")
	assert.Nil(t, in.Rating, "非数值评分为空")
	assert.Equal(t, "42", *in.Cover)
	assert.Nil(t, in.Theme)
}

func TestNormalize(t *testing.T) {
	existing := &Book{
		ID:       3,
		Name:     "1984",
		Author:   "George Orwell",
		Editor:   "Secker & Warburg",
		Year:     1949,
		Read:     true,
		Favorite: true,
		Rating:   intPtr(5),
		Theme:    strPtr("Dystopie"),
	}

	t.Run("无已有记录使用默认值", func(t *testing.T) {
		c := Normalize(ParseInput(map[string]any{"name": "X"}), nil)

		assert.Equal(t, "X", c.Name)
		assert.Empty(t, c.Author)
		assert.Zero(t, c.Year)
		assert.False(t, c.Read)
		assert.Nil(t, c.Rating)
		assert.Nil(t, c.Cover)
		assert.Nil(t, c.Theme)
	})

	t.Run("输入覆盖已有记录", func(t *testing.T) {
		c := Normalize(ParseInput(map[string]any{"read": false, "rating": float64(8)}), existing)

		assert.Equal(t, "1984", c.Name)
		assert.False(t, c.Read)
		assert.True(t, c.Favorite)
		assert.Equal(t, intPtr(5), c.Rating)
		assert.Equal(t, 1949.0, c.Year)
	})

	t.Run("非数值评分清空已有评分", func(t *testing.T) {
		c := Normalize(ParseInput(map[string]any{"rating": "abc"}), existing)
		assert.Nil(t, c.Rating)
	})

	t.Run("不修改已有记录", func(t *testing.T) {
		c := Normalize(ParseInput(map[string]any{"theme": "Classique"}), existing)
		*c.Rating = 1

		assert.Equal(t, "Classique", *c.Theme)
		assert.Equal(t, "Dystopie", *existing.Theme)
		assert.Equal(t, 5, *existing.Rating)
	})
}

func TestCandidate_Validate(t *testing.T) {
	valid := Candidate{Name: "Dune", Author: "Frank Herbert", Editor: "Chilton Books", Year: 1965}
	assert.NoError(t, valid.Validate())

	// 空串年份转换为0,仍是有限数值
	zeroYear := Normalize(ParseInput(map[string]any{"name": "a", "author": "b", "editor": "c", "year": ""}), nil)
	assert.NoError(t, zeroYear.Validate())

	cases := map[string]Candidate{
		"缺少书名":  {Author: "a", Editor: "b", Year: 1},
		"缺少作者":  {Name: "a", Editor: "b", Year: 1},
		"缺少出版社": {Name: "a", Author: "b", Year: 1},
		"年份非数值": {Name: "a", Author: "b", Editor: "c", Year: math.NaN()},
		"年份无穷大": {Name: "a", Author: "b", Editor: "c", Year: math.Inf(1)},
		"年份过大":  {Name: "a", Author: "b", Editor: "c", Year: 1e300},
		"年份过小":  {Name: "a", Author: "b", Editor: "c", Year: -1e19},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Validate(), ErrMissingRequiredFields)
		})
	}
}

func TestCandidate_ValidateYearRange(t *testing.T) {
	for _, year := range []float64{math.MaxInt32, -math.MaxInt32, 0, -500} {
		c := Candidate{Name: "a", Author: "b", Editor: "c", Year: year}
		require.NoError(t, c.Validate(), "year %v", year)
		assert.Equal(t, int(year), c.Book(1).Year)
	}

	// 字符串形式的超大年份同样被拒绝
	c := Normalize(ParseInput(map[string]any{"name": "a", "author": "b", "editor": "c", "year": "1e300"}), nil)
	assert.ErrorIs(t, c.Validate(), ErrMissingRequiredFields)

	c = Normalize(ParseInput(map[string]any{"name": "a", "author": "b", "editor": "c", "year": "1_0"}), nil)
	assert.ErrorIs(t, c.Validate(), ErrMissingRequiredFields)
}

func TestCandidate_BookTruncatesYear(t *testing.T) {
	b := Candidate{Name: "a", Author: "b", Editor: "c", Year: 1965.7}.Book(12)
	assert.Equal(t, uint(12), b.ID)
	assert.Equal(t, 1965, b.Year)
}
