// internal/repository/progress_store.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go_5_read_keep/internal/model"
)

// ProgressStore は学年ごとの進捗マッピングの型付き永続化レイヤです。
// 実体はKVStore上のJSONブロブ ("progress_grade_<grade>") です。
type ProgressStore interface {
	// Get は学年の進捗マッピングを返します。未保存なら空のマッピングを返します。
	Get(ctx context.Context, grade int) (model.GradeProgress, error)
	// Put は1冊分のレコードをマッピングにupsertし、マッピング全体を書き戻します。
	// マージの直前に必ず最新の保存状態を読み直すため、同一学年内の他ブックへの
	// 並行更新を失いません。書き込みが確認できるまで成功を返しません。
	Put(ctx context.Context, grade int, bookID string, record model.ProgressRecord) error
	// Clear は学年の全進捗を削除します。取り消しはできません。
	Clear(ctx context.Context, grade int) error
}

type kvProgressStore struct {
	kv     KVStore
	logger *slog.Logger
}

func NewKVProgressStore(kv KVStore, logger *slog.Logger) ProgressStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &kvProgressStore{kv: kv, logger: logger}
}

func progressKey(grade int) string {
	return fmt.Sprintf("progress_grade_%d", grade)
}

// storageError はKV層の失敗を ErrStorageUnavailable を包むAppErrorに変換します。
// 原因は呼び出し元でログ済み。失敗した書き込みを成功として報告してはならない。
func storageError() error {
	return model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)
}

func (s *kvProgressStore) Get(ctx context.Context, grade int) (model.GradeProgress, error) {
	raw, found, err := s.kv.Get(ctx, progressKey(grade))
	if err != nil {
		s.logger.Error("Failed to load grade progress", "grade", grade, "error", err)
		return nil, storageError()
	}
	if !found {
		// 初回アクセス時は空のマッピングから始まる
		return model.GradeProgress{}, nil
	}

	var progress model.GradeProgress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		s.logger.Error("Failed to decode grade progress blob", "grade", grade, "error", err)
		return nil, storageError()
	}

	// BookID はマッピングのキーなのでブロブには含まれない。ここで補完する
	for id, rec := range progress {
		rec.BookID = id
		progress[id] = rec
	}
	return progress, nil
}

func (s *kvProgressStore) Put(ctx context.Context, grade int, bookID string, record model.ProgressRecord) error {
	// 古いメモリ上のコピーではなく、保存済みの最新マッピングに対してマージする
	progress, err := s.Get(ctx, grade)
	if err != nil {
		return err
	}
	record.BookID = bookID
	progress[bookID] = record

	raw, err := json.Marshal(progress)
	if err != nil {
		s.logger.Error("Failed to encode grade progress blob", "grade", grade, "error", err)
		return storageError()
	}

	if err := s.kv.Set(ctx, progressKey(grade), string(raw)); err != nil {
		s.logger.Error("Failed to persist grade progress", "grade", grade, "book_id", bookID, "error", err)
		return storageError()
	}
	return nil
}

func (s *kvProgressStore) Clear(ctx context.Context, grade int) error {
	if err := s.kv.Remove(ctx, progressKey(grade)); err != nil {
		s.logger.Error("Failed to clear grade progress", "grade", grade, "error", err)
		return storageError()
	}
	return nil
}
