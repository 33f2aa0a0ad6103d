package book

import "math"

// Stats 图书统计
type Stats struct {
	TotalBooks     int
	ReadCount      int
	UnreadCount    int
	FavoritesCount int
	AverageRating  float64 // 只统计有评分的图书,保留两位小数;无评分时为0
}

// ComputeStats 对快照做一次遍历得到统计结果
func ComputeStats(books []Book) Stats {
	var (
		s     Stats
		sum   int
		rated int
	)
	s.TotalBooks = len(books)

	for _, b := range books {
		if b.Read {
			s.ReadCount++
		}
		if b.Favorite {
			s.FavoritesCount++
		}
		if b.Rating != nil {
			sum += *b.Rating
			rated++
		}
	}
	s.UnreadCount = s.TotalBooks - s.ReadCount

	if rated > 0 {
		s.AverageRating = math.Round(float64(sum)/float64(rated)*100) / 100
	}
	return s
}
