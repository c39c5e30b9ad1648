// internal/model/progress.go
package model

import "time"

// ProgressRecord はユーザーが触れた1冊分の読書進捗を表します。
// TotalPages / BookTitle / BookType は初回書き込み時点のカタログのスナップショットで、
// カタログが後から変わってもパーセント計算が壊れないようにしています。
type ProgressRecord struct {
	BookID      string       `json:"-"` // GradeProgress のキー。読み込み時に補完される
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Completed   bool         `json:"completed"`
	LastRead    time.Time    `json:"lastRead"`
	BookTitle   string       `json:"bookTitle"`
	BookType    BookCategory `json:"bookType"`
}

// GradeProgress は1学年分の進捗マッピング (ブックID -> ProgressRecord) です。
// ProgressStore が所有し、各操作は最新のマッピングを読み直してから書き戻します。
type GradeProgress map[string]ProgressRecord

// Percent は進捗率 (0..100) を返します。
// Completed なら currentPage に関わらず 100。TotalPages が 0 の場合はゼロ除算を避けて 0。
func (r ProgressRecord) Percent() int {
	if r.Completed {
		return 100
	}
	if r.TotalPages <= 0 {
		return 0
	}
	return 100 * r.CurrentPage / r.TotalPages
}

// 進捗更新リクエストDTO
type UpdateProgressRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// 選択中学年の更新リクエストDTO
type PutSelectedGradeRequest struct {
	Grade int `json:"grade" validate:"required,min=1,max=12"`
}
