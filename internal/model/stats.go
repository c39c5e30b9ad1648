// internal/model/stats.go
package model

import "time"

// RecentActivity は直近に動きのあった1冊分のサマリです
type RecentActivity struct {
	BookID      string       `json:"book_id"`
	BookTitle   string       `json:"book_title"`
	BookType    BookCategory `json:"book_type"`
	CurrentPage int          `json:"current_page"`
	TotalPages  int          `json:"total_pages"`
	Percent     int          `json:"percent"`
	Completed   bool         `json:"completed"`
	LastRead    time.Time    `json:"last_read"`
}

// Badges はプロフィール画面のバッジ解放状態です
type Badges struct {
	FirstBook         bool `json:"first_book"`         // 1冊以上読了
	FoundationBuilder bool `json:"foundation_builder"` // 精読を全冊読了
	SpeedReader       bool `json:"speed_reader"`       // 5冊以上読了
	Bookworm          bool `json:"bookworm"`           // 累計100ページ以上
}

// Stats は1学年分の進捗サマリです。
// 呼び出しごとにカタログと進捗マッピングから再計算され、キャッシュは持ちません。
type Stats struct {
	Grade              int              `json:"grade"`
	CompletedTotal     int              `json:"completed_total"`
	CompletedIntensive int              `json:"completed_intensive"`
	CompletedExtensive int              `json:"completed_extensive"`
	TotalPagesRead     int              `json:"total_pages_read"`
	RecentActivity     []RecentActivity `json:"recent_activity"`
	Badges             Badges           `json:"badges"`
}
