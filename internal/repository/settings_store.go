// internal/repository/settings_store.go
package repository

import (
	"context"
	"log/slog"
	"strconv"

	"go_5_read_keep/internal/model"
)

// selectedGradeKey は端末で選択中の学年を保存するKVキーです
const selectedGradeKey = "selectedGrade"

// SettingsStore はリーダー側の永続設定 (現状は選択中の学年のみ) を扱います
type SettingsStore interface {
	// SelectedGrade は保存済みの学年と存在フラグを返します。未保存はエラーではありません。
	SelectedGrade(ctx context.Context) (int, bool, error)
	SetSelectedGrade(ctx context.Context, grade int) error
}

type kvSettingsStore struct {
	kv     KVStore
	logger *slog.Logger
}

func NewKVSettingsStore(kv KVStore, logger *slog.Logger) SettingsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &kvSettingsStore{kv: kv, logger: logger}
}

func (s *kvSettingsStore) SelectedGrade(ctx context.Context) (int, bool, error) {
	raw, found, err := s.kv.Get(ctx, selectedGradeKey)
	if err != nil {
		s.logger.Error("Failed to load selected grade", "error", err)
		return 0, false, storageError()
	}
	if !found {
		return 0, false, nil
	}

	grade, err := strconv.Atoi(raw)
	if err != nil || grade < model.MinGrade || grade > model.MaxGrade {
		// 壊れた値は未設定として扱い、次の書き込みで上書きされる
		s.logger.Warn("Stored selected grade is invalid, treating as unset", "raw", raw)
		return 0, false, nil
	}
	return grade, true, nil
}

func (s *kvSettingsStore) SetSelectedGrade(ctx context.Context, grade int) error {
	if err := s.kv.Set(ctx, selectedGradeKey, strconv.Itoa(grade)); err != nil {
		s.logger.Error("Failed to persist selected grade", "grade", grade, "error", err)
		return storageError()
	}
	return nil
}
