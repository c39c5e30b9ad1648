// internal/service/settings_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_read_keep/internal/model"
	repomocks "go_5_read_keep/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_settingsService_SetSelectedGrade(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		grade     int
		setupMock func(store *repomocks.SettingsStore)
		wantErr   error
	}{
		{
			name:  "正常系: 有効な学年を保存",
			grade: 3,
			setupMock: func(store *repomocks.SettingsStore) {
				store.On("SetSelectedGrade", mock.Anything, 3).Return(nil).Once()
			},
		},
		{
			name:      "異常系: 学年0は検証ではじく (ストアは呼ばれない)",
			grade:     0,
			setupMock: func(store *repomocks.SettingsStore) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: 学年13は検証ではじく",
			grade:     13,
			setupMock: func(store *repomocks.SettingsStore) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:  "異常系: ストアの失敗はそのまま返す",
			grade: 3,
			setupMock: func(store *repomocks.SettingsStore) {
				store.On("SetSelectedGrade", mock.Anything, 3).
					Return(model.NewAppError("STORAGE_UNAVAILABLE", "unavailable", "", model.ErrStorageUnavailable)).Once()
			},
			wantErr: model.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := repomocks.NewSettingsStore(t)
			tt.setupMock(mockStore)
			svc := NewSettingsService(mockStore)

			err := svc.SetSelectedGrade(ctx, tt.grade)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_settingsService_SelectedGrade(t *testing.T) {
	ctx := context.Background()
	mockStore := repomocks.NewSettingsStore(t)
	mockStore.On("SelectedGrade", mock.Anything).Return(5, true, nil).Once()

	svc := NewSettingsService(mockStore)
	grade, found, err := svc.SelectedGrade(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, grade)
}
