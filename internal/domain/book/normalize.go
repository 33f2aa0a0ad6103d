package book

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Input 解析后的图书输入
// 这是请求体进入领域层的唯一入口:HTTP层把任意JSON交给ParseInput,
// 之后领域层只接触强类型字段。nil表示请求中没有该字段(或为null)。
type Input struct {
	Name     *string
	Author   *string
	Editor   *string
	Year     *float64 // 可能是NaN(无法转换为数值),由Validate拒绝
	Read     *bool
	Favorite *bool

	// RatingSet 请求中出现了rating字段;此时Rating可能为nil
	// (非数值输入会把已有评分清空,与"未提供"不同)
	RatingSet bool
	Rating    *int

	Cover *string
	Theme *string
}

// ParseInput 把松散类型的请求体转换为Input
func ParseInput(raw map[string]any) Input {
	var in Input

	if v, ok := present(raw, "name"); ok {
		s := ToText(v)
		in.Name = &s
	}
	if v, ok := present(raw, "author"); ok {
		s := ToText(v)
		in.Author = &s
	}
	if v, ok := present(raw, "editor"); ok {
		s := ToText(v)
		in.Editor = &s
	}
	if v, ok := present(raw, "year"); ok {
		y := ToNumber(v)
		in.Year = &y
	}
	if v, ok := present(raw, "read"); ok {
		b := ToBool(v)
		in.Read = &b
	}
	if v, ok := present(raw, "favorite"); ok {
		b := ToBool(v)
		in.Favorite = &b
	}
	if v, ok := present(raw, "rating"); ok {
		in.RatingSet = true
		in.Rating = ClampRating(v)
	}
	if v, ok := present(raw, "cover"); ok {
		s := ToText(v)
		in.Cover = &s
	}
	if v, ok := present(raw, "theme"); ok {
		s := ToText(v)
		in.Theme = &s
	}

	return in
}

// maxYear 年份绝对值上限,保证截断后在任何平台的int范围内
const maxYear = math.MaxInt32

// Candidate 归一化后的候选记录,校验通过后才能写入仓储
type Candidate struct {
	Name     string
	Author   string
	Editor   string
	Year     float64
	Read     bool
	Favorite bool
	Rating   *int
	Cover    *string
	Theme    *string
}

// Normalize 合并输入与已有记录
// 字段优先级:输入 > 已有记录 > 类型默认值("", 0, false, nil)
func Normalize(in Input, existing *Book) Candidate {
	var c Candidate
	if existing != nil {
		e := existing.Clone()
		c = Candidate{
			Name:     e.Name,
			Author:   e.Author,
			Editor:   e.Editor,
			Year:     float64(e.Year),
			Read:     e.Read,
			Favorite: e.Favorite,
			Rating:   e.Rating,
			Cover:    e.Cover,
			Theme:    e.Theme,
		}
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Author != nil {
		c.Author = *in.Author
	}
	if in.Editor != nil {
		c.Editor = *in.Editor
	}
	if in.Year != nil {
		c.Year = *in.Year
	}
	if in.Read != nil {
		c.Read = *in.Read
	}
	if in.Favorite != nil {
		c.Favorite = *in.Favorite
	}
	if in.RatingSet {
		c.Rating = in.Rating
	}
	if in.Cover != nil {
		c.Cover = cloneString(in.Cover)
	}
	if in.Theme != nil {
		c.Theme = cloneString(in.Theme)
	}

	return c
}

// Validate 必填字段校验,是写入仓储前唯一的关卡
func (c Candidate) Validate() error {
	if c.Name == "" || c.Author == "" || c.Editor == "" {
		return ErrMissingRequiredFields
	}
	if math.IsNaN(c.Year) || math.IsInf(c.Year, 0) {
		return ErrMissingRequiredFields
	}
	// 超出范围的年份截断为int会溢出
	if math.Abs(c.Year) > maxYear {
		return ErrMissingRequiredFields
	}
	return nil
}

// Book 转换为实体,年份的小数部分被截断
func (c Candidate) Book(id uint) Book {
	return Book{
		ID:       id,
		Name:     c.Name,
		Author:   c.Author,
		Editor:   c.Editor,
		Year:     int(c.Year),
		Read:     c.Read,
		Favorite: c.Favorite,
		Rating:   c.Rating,
		Cover:    c.Cover,
		Theme:    c.Theme,
	}
}

// =========================================
// 类型转换(全部为total函数,任何输入都不会panic)
// =========================================

// ToBool 布尔转换
// - 原生bool直接返回
// - 字符串不区分大小写等于"true"时为true,其余字符串一律false
// - 其他类型按真值判断(非零数字、非空对象为true)
func ToBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case json.Number:
		f := ToNumber(x)
		return f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// ToNumber 数值转换,无法转换时返回NaN
// 字符串先去掉首尾空白,空串视为0
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case json.Number:
		return parseNumber(x.String())
	case string:
		return parseNumber(x)
	default:
		return math.NaN()
	}
}

// parseNumber 字符串转数值
// 接受十进制(可带符号、小数点、e指数)、Infinity/+Infinity/-Infinity、
// 无符号的0x/0o/0b整数;其余写法(下划线、inf、nan、十六进制浮点)一律NaN
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if isDecimal(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) && !strings.ContainsRune(s, '_') {
		if n, err := strconv.ParseUint(s, 0, 64); err == nil {
			return float64(n)
		}
	}
	return math.NaN()
}

func isDecimal(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return false
		}
	}
	return true
}

// ClampRating 评分转换:四舍五入后限制在[0,5];非数值返回nil
func ClampRating(v any) *int {
	if v == nil {
		return nil
	}
	n := ToNumber(v)
	if math.IsNaN(n) {
		return nil
	}
	r := math.Floor(n + 0.5)
	r = math.Max(0, math.Min(5, r))
	rating := int(r)
	return &rating
}

// ToText 字符串转换,数字与布尔取其字面形式,对象/数组视为空串
func ToText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
