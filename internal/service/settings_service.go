// internal/service/settings_service.go
package service

import (
	"context"
	"fmt"

	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/repository"
)

// SettingsService は選択中の学年の読み書きを扱います
type SettingsService interface {
	// SelectedGrade は保存済みの学年を返します。未設定なら found=false です。
	SelectedGrade(ctx context.Context) (grade int, found bool, err error)
	SetSelectedGrade(ctx context.Context, grade int) error
}

type settingsService struct {
	store repository.SettingsStore
}

func NewSettingsService(store repository.SettingsStore) SettingsService {
	return &settingsService{store: store}
}

func (s *settingsService) SelectedGrade(ctx context.Context) (int, bool, error) {
	return s.store.SelectedGrade(ctx)
}

func (s *settingsService) SetSelectedGrade(ctx context.Context, grade int) error {
	if grade < model.MinGrade || grade > model.MaxGrade {
		return model.NewAppError(
			"INVALID_GRADE",
			fmt.Sprintf("学年は%d〜%dの範囲で指定してください。", model.MinGrade, model.MaxGrade),
			"grade",
			model.ErrInvalidInput,
		)
	}
	if err := s.store.SetSelectedGrade(ctx, grade); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save selected grade", "grade", grade, "error", err)
		return err
	}
	return nil
}
