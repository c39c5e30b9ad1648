// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"os"

	"go_5_read_keep/internal/model"

	"gopkg.in/yaml.v3"
)

// Catalog は学年別のブックカタログへの読み取り専用アクセスを提供します。
// 読み込み後は不変なので、ロックなしで複数ゴルーチンから参照できます。
type Catalog interface {
	// BooksForGrade は指定学年の精読・多読リストを返します。
	// 未知の学年は空リストを返します (エラーにはしない)。
	BooksForGrade(grade int) (intensive, extensive []*model.Book)
	// FindByID は全学年を横断してブックを検索します。
	// 見つからない場合は model.ErrUnknownBook を返します。
	FindByID(bookID string) (*model.Book, error)
}

// catalogFile は configs/catalog.yaml のトップレベル構造です
type catalogFile struct {
	Grades []gradeEntry `yaml:"grades"`
}

type gradeEntry struct {
	Grade     int           `yaml:"grade"`
	Intensive []*model.Book `yaml:"intensive"`
	Extensive []*model.Book `yaml:"extensive"`
}

type gradeShelf struct {
	intensive []*model.Book
	extensive []*model.Book
}

type staticCatalog struct {
	byGrade map[int]gradeShelf
	byID    map[string]*model.Book
}

// Load はYAMLファイルからカタログを読み込み、不変条件を検証します
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	var books []*model.Book
	for _, entry := range file.Grades {
		for _, b := range entry.Intensive {
			b.Grade = entry.Grade
			b.Category = model.CategoryIntensive
			books = append(books, b)
		}
		for _, b := range entry.Extensive {
			b.Grade = entry.Grade
			b.Category = model.CategoryExtensive
			books = append(books, b)
		}
	}

	return New(books)
}

// New はブックのリストからカタログを構築します。テストからも直接使えます。
// 学年範囲・総ページ数・ID重複・クイズの付与先をここで一括検証します。
func New(books []*model.Book) (Catalog, error) {
	c := &staticCatalog{
		byGrade: make(map[int]gradeShelf),
		byID:    make(map[string]*model.Book),
	}

	for _, b := range books {
		if b.ID == "" {
			return nil, fmt.Errorf("catalog validation: book with empty id (title=%q)", b.Title)
		}
		if b.Grade < model.MinGrade || b.Grade > model.MaxGrade {
			return nil, fmt.Errorf("catalog validation: book %s has invalid grade %d", b.ID, b.Grade)
		}
		if !b.Category.IsValid() {
			return nil, fmt.Errorf("catalog validation: book %s has invalid category %q", b.ID, b.Category)
		}
		if b.TotalPages < 1 {
			return nil, fmt.Errorf("catalog validation: book %s has invalid total_pages %d", b.ID, b.TotalPages)
		}
		// クイズは多読ブックにのみ付与できる
		if len(b.Quiz) > 0 && b.Category != model.CategoryExtensive {
			return nil, fmt.Errorf("catalog validation: book %s is intensive but has a quiz", b.ID)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("catalog validation: duplicate book id %s", b.ID)
		}

		c.byID[b.ID] = b
		shelf := c.byGrade[b.Grade]
		if b.Category == model.CategoryIntensive {
			shelf.intensive = append(shelf.intensive, b)
		} else {
			shelf.extensive = append(shelf.extensive, b)
		}
		c.byGrade[b.Grade] = shelf
	}

	return c, nil
}

func (c *staticCatalog) BooksForGrade(grade int) ([]*model.Book, []*model.Book) {
	shelf, ok := c.byGrade[grade]
	if !ok {
		return []*model.Book{}, []*model.Book{}
	}
	return shelf.intensive, shelf.extensive
}

func (c *staticCatalog) FindByID(bookID string) (*model.Book, error) {
	b, ok := c.byID[bookID]
	if !ok {
		return nil, model.ErrUnknownBook
	}
	return b, nil
}
