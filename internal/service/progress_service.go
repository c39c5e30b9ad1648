// internal/service/progress_service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go_5_read_keep/internal/catalog"
	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/repository"
)

// ProgressService は読書進捗のルールレイヤです。
// ページ更新の検証・読了判定・多読解放の判定を担当します。
type ProgressService interface {
	// RecordPageUpdate はページ位置の更新を検証して永続化し、更新後のレコードを返します。
	// 永続化が確認できるまで成功を返しません。
	RecordPageUpdate(ctx context.Context, grade int, bookID string, requestedPage int) (*model.ProgressRecord, error)
	// GetGradeProgress は学年の進捗マッピングを返します。履歴が無ければ空です。
	GetGradeProgress(ctx context.Context, grade int) (model.GradeProgress, error)
	// ResetGrade は学年の全進捗を削除します。読了フラグを落とせる唯一の経路です。
	ResetGrade(ctx context.Context, grade int) error
	// IsTierUnlocked は多読リストが解放されているかを返します。
	IsTierUnlocked(ctx context.Context, grade int) (bool, error)
}

type progressService struct {
	catalog catalog.Catalog
	store   repository.ProgressStore

	// 学年ごとの read-modify-write を直列化するためのロックテーブル。
	// 異なる学年の操作は互いにブロックしない。
	mu         sync.Mutex
	gradeLocks map[int]*sync.Mutex
}

func NewProgressService(cat catalog.Catalog, store repository.ProgressStore) ProgressService {
	return &progressService{
		catalog:    cat,
		store:      store,
		gradeLocks: make(map[int]*sync.Mutex),
	}
}

// gradeLock は学年専用のミューテックスを返します (無ければ作る)
func (s *progressService) gradeLock(grade int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.gradeLocks[grade]
	if !ok {
		lock = &sync.Mutex{}
		s.gradeLocks[grade] = lock
	}
	return lock
}

func (s *progressService) RecordPageUpdate(ctx context.Context, grade int, bookID string, requestedPage int) (*model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx).With("grade", grade, "book_id", bookID)

	// 1. カタログでブックを解決する
	book, err := s.catalog.FindByID(bookID)
	if err != nil {
		logger.Warn("Page update for unknown book")
		return nil, model.NewAppError("UNKNOWN_BOOK", "指定されたブックはカタログに存在しません。", "book_id", model.ErrUnknownBook)
	}
	// 学年違いのブックIDも呼び出し側のバグとして同じ扱いにする
	if book.Grade != grade {
		logger.Warn("Page update for book of another grade", "book_grade", book.Grade)
		return nil, model.NewAppError("UNKNOWN_BOOK", "指定されたブックはこの学年のものではありません。", "book_id", model.ErrUnknownBook)
	}

	// 2. ページ範囲の検証。UI側で事前にクランプされる想定だが、ここが最終的な権威
	if requestedPage < 1 || requestedPage > book.TotalPages {
		logger.Warn("Page out of range", "requested_page", requestedPage, "total_pages", book.TotalPages)
		return nil, model.NewAppError(
			"PAGE_OUT_OF_RANGE",
			fmt.Sprintf("ページ番号は1〜%dの範囲で指定してください。", book.TotalPages),
			"page",
			model.ErrPageOutOfRange,
		)
	}

	// 3〜6. 同一学年の read-modify-write はロックで直列化する。
	// 連打などで重なった非同期呼び出しがあっても更新を失わない
	lock := s.gradeLock(grade)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.store.Get(ctx, grade)
	if err != nil {
		logger.Error("Failed to load progress for page update", "error", err)
		return nil, err
	}

	record, found := progress[bookID]
	if !found {
		// 初回書き込み: カタログのスナップショットを取る
		record = model.ProgressRecord{
			BookID:     bookID,
			TotalPages: book.TotalPages,
			BookTitle:  book.Title,
			BookType:   book.Category,
		}
	}

	record.CurrentPage = requestedPage
	// 読了フラグは単調。ページを戻してもこの経路では落ちない
	record.Completed = record.Completed || requestedPage == book.TotalPages
	record.LastRead = time.Now()

	if err := s.store.Put(ctx, grade, bookID, record); err != nil {
		logger.Error("Failed to persist page update", "error", err)
		return nil, err
	}

	logger.Info("Page update recorded", "page", requestedPage, "completed", record.Completed)
	return &record, nil
}

func (s *progressService) GetGradeProgress(ctx context.Context, grade int) (model.GradeProgress, error) {
	return s.store.Get(ctx, grade)
}

func (s *progressService) ResetGrade(ctx context.Context, grade int) error {
	logger := middleware.GetLogger(ctx).With("grade", grade)

	lock := s.gradeLock(grade)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Clear(ctx, grade); err != nil {
		logger.Error("Failed to reset grade progress", "error", err)
		return err
	}
	logger.Info("Grade progress reset")
	return nil
}

func (s *progressService) IsTierUnlocked(ctx context.Context, grade int) (bool, error) {
	intensive, _ := s.catalog.BooksForGrade(grade)
	// 精読リストが空の学年は解放しない。コンテンツの無い学年が
	// 下流のコンテンツを誤って解放しないようにするための方針であり、
	// 「空なら自明に達成」とは扱わない
	if len(intensive) == 0 {
		return false, nil
	}

	progress, err := s.store.Get(ctx, grade)
	if err != nil {
		return false, err
	}

	for _, book := range intensive {
		record, ok := progress[book.ID]
		if !ok || !record.Completed {
			return false, nil
		}
	}
	return true, nil
}
