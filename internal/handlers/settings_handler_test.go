package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_read_keep/internal/handlers"
	"go_5_read_keep/internal/model"

	svc_mocks "go_5_read_keep/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Test GetSelectedGrade ---
func TestSettingsHandler_GetSelectedGrade(t *testing.T) {
	mockService := new(svc_mocks.SettingsService)
	handler := handlers.NewSettingsHandler(mockService)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 設定済み",
			setupMock: func() {
				mockService.On("SelectedGrade", mock.Anything).Return(3, true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"grade":3,"selected":true}`,
		},
		{
			name: "正常系: 未設定は selected=false",
			setupMock: func() {
				mockService.On("SelectedGrade", mock.Anything).Return(0, false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"grade":0,"selected":false}`,
		},
		{
			name: "異常系: ストレージ障害",
			setupMock: func() {
				mockService.On("SelectedGrade", mock.Anything).
					Return(0, false, model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/settings/grade", nil)

			rr := httptest.NewRecorder()
			handler.GetSelectedGrade(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test PutSelectedGrade ---
func TestSettingsHandler_PutSelectedGrade(t *testing.T) {
	mockService := new(svc_mocks.SettingsService)
	handler := handlers.NewSettingsHandler(mockService)

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "正常系: 学年を保存",
			reqBody: &model.PutSelectedGradeRequest{Grade: 3},
			setupMock: func() {
				mockService.On("SetSelectedGrade", mock.Anything, 3).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"grade":3,"selected":true}`,
		},
		{
			name:           "異常系: 不正なリクエストボディ (JSON)",
			reqBody:        `{"grade":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 学年0はバリデーションエラー",
			reqBody:        `{"grade": 0}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 学年13はバリデーションエラー",
			reqBody:        `{"grade": 13}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:    "異常系: ストレージ障害",
			reqBody: &model.PutSelectedGradeRequest{Grade: 3},
			setupMock: func() {
				mockService.On("SetSelectedGrade", mock.Anything, 3).
					Return(model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPut, "/settings/grade", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.PutSelectedGrade(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
