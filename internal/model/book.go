// internal/model/book.go
package model

// BookCategory はブックの区分 (精読 / 多読) を表します
type BookCategory string

const (
	// CategoryIntensive 精読。学年の必修リストで、全冊読了で多読が解放される
	CategoryIntensive BookCategory = "intensive"
	// CategoryExtensive 多読。精読の全冊読了後に解放される任意リスト
	CategoryExtensive BookCategory = "extensive"
)

// IsValid はカタログ読み込み時のバリデーション用
func (c BookCategory) IsValid() bool {
	return c == CategoryIntensive || c == CategoryExtensive
}

const (
	// MinGrade / MaxGrade は対応する学年の範囲
	MinGrade = 1
	MaxGrade = 12
)

// QuizQuestion は多読ブックに付属するクイズの1問を表します
type QuizQuestion struct {
	Question    string   `yaml:"question" json:"question"`
	Options     []string `yaml:"options" json:"options"`
	AnswerIndex int      `yaml:"answer_index" json:"answer_index"`
}

// Book はカタログ内の1冊を表します。起動時に読み込まれた後は不変です
type Book struct {
	ID         string         `yaml:"id" json:"id"`
	Grade      int            `yaml:"-" json:"grade"`
	Category   BookCategory   `yaml:"-" json:"category"`
	Title      string         `yaml:"title" json:"title"`
	TotalPages int            `yaml:"total_pages" json:"total_pages"`
	PDFURL     string         `yaml:"pdf_url" json:"pdf_url"`
	Quiz       []QuizQuestion `yaml:"quiz,omitempty" json:"quiz,omitempty"` // 多読ブックのみ
}
