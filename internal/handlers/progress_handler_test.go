package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_5_read_keep/internal/handlers" // テスト対象
	"go_5_read_keep/internal/model"

	svc_mocks "go_5_read_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParams(ctx context.Context, params map[string]string) context.Context {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// --- Test UpdateProgress ---
func TestProgressHandler_UpdateProgress(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewProgressHandler(mockService)

	savedRecord := &model.ProgressRecord{
		BookID:      "g1-int-001",
		CurrentPage: 4,
		TotalPages:  10,
		Completed:   false,
		LastRead:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		BookTitle:   "いっさつめ",
		BookType:    model.CategoryIntensive,
	}

	tests := []struct {
		name           string
		gradeParam     string
		bookIDParam    string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "正常系: ページ更新",
			gradeParam:  "1",
			bookIDParam: "g1-int-001",
			reqBody:     &model.UpdateProgressRequest{Page: 4},
			setupMock: func() {
				mockService.On("RecordPageUpdate", mock.Anything, 1, "g1-int-001", 4).Return(savedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"current_page":4`,
		},
		{
			name:        "正常系: レスポンスに進捗率が含まれる",
			gradeParam:  "1",
			bookIDParam: "g1-int-001",
			reqBody:     &model.UpdateProgressRequest{Page: 4},
			setupMock: func() {
				mockService.On("RecordPageUpdate", mock.Anything, 1, "g1-int-001", 4).Return(savedRecord, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"percent":40`,
		},
		{
			name:           "異常系: 学年が整数でない",
			gradeParam:     "first",
			bookIDParam:    "g1-int-001",
			reqBody:        &model.UpdateProgressRequest{Page: 4},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: 学年が範囲外",
			gradeParam:     "13",
			bookIDParam:    "g1-int-001",
			reqBody:        &model.UpdateProgressRequest{Page: 4},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: 不正なリクエストボディ (JSON)",
			gradeParam:     "1",
			bookIDParam:    "g1-int-001",
			reqBody:        `{"page":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 未知のフィールドを含むボディ",
			gradeParam:     "1",
			bookIDParam:    "g1-int-001",
			reqBody:        `{"page": 4, "unexpected": true}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: ページ0はバリデーションエラー",
			gradeParam:     "1",
			bookIDParam:    "g1-int-001",
			reqBody:        `{"page": 0}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:        "異常系: 未知のブック",
			gradeParam:  "1",
			bookIDParam: "no-such-book",
			reqBody:     &model.UpdateProgressRequest{Page: 4},
			setupMock: func() {
				mockService.On("RecordPageUpdate", mock.Anything, 1, "no-such-book", 4).
					Return(nil, model.NewAppError("UNKNOWN_BOOK", "指定されたブックはカタログに存在しません。", "book_id", model.ErrUnknownBook)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "UNKNOWN_BOOK",
		},
		{
			name:        "異常系: ページ範囲外 (サービス判定)",
			gradeParam:  "1",
			bookIDParam: "g1-int-001",
			reqBody:     &model.UpdateProgressRequest{Page: 99},
			setupMock: func() {
				mockService.On("RecordPageUpdate", mock.Anything, 1, "g1-int-001", 99).
					Return(nil, model.NewAppError("PAGE_OUT_OF_RANGE", "ページ番号は1〜10の範囲で指定してください。", "page", model.ErrPageOutOfRange)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "PAGE_OUT_OF_RANGE",
		},
		{
			name:        "異常系: ストレージ障害は503",
			gradeParam:  "1",
			bookIDParam: "g1-int-001",
			reqBody:     &model.UpdateProgressRequest{Page: 4},
			setupMock: func() {
				mockService.On("RecordPageUpdate", mock.Anything, 1, "g1-int-001", 4).
					Return(nil, model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			target := "/grades/" + tt.gradeParam + "/books/" + tt.bookIDParam + "/progress"
			req := newJsonRequest(t, http.MethodPut, target, tt.reqBody)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{
				"grade":   tt.gradeParam,
				"book_id": tt.bookIDParam,
			}))

			rr := httptest.NewRecorder()
			handler.UpdateProgress(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetProgress ---
func TestProgressHandler_GetProgress(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewProgressHandler(mockService)

	tests := []struct {
		name           string
		gradeParam     string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "正常系: 進捗あり",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("GetGradeProgress", mock.Anything, 1).Return(model.GradeProgress{
					"g1-int-001": {
						BookID:      "g1-int-001",
						CurrentPage: 10,
						TotalPages:  10,
						Completed:   true,
						LastRead:    time.Now(),
						BookTitle:   "いっさつめ",
						BookType:    model.CategoryIntensive,
					},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completed":true`,
		},
		{
			name:       "正常系: 進捗なしは空配列",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("GetGradeProgress", mock.Anything, 1).Return(model.GradeProgress{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "異常系: 不正な学年",
			gradeParam:     "0",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:       "異常系: ストレージ障害",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("GetGradeProgress", mock.Anything, 1).
					Return(nil, model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/grades/"+tt.gradeParam+"/progress", nil)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{"grade": tt.gradeParam}))

			rr := httptest.NewRecorder()
			handler.GetProgress(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test ResetProgress ---
func TestProgressHandler_ResetProgress(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewProgressHandler(mockService)

	tests := []struct {
		name           string
		gradeParam     string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "正常系: リセット成功は204",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("ResetGrade", mock.Anything, 1).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name:           "異常系: 不正な学年",
			gradeParam:     "abc",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:       "異常系: ストレージ障害",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("ResetGrade", mock.Anything, 1).
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

			req := newJsonRequest(t, http.MethodDelete, "/grades/"+tt.gradeParam+"/progress", nil)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{"grade": tt.gradeParam}))

			rr := httptest.NewRecorder()
			handler.ResetProgress(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			} else {
				assert.Empty(t, rr.Body.String()) // 204 No Content はボディ空
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetUnlock ---
func TestProgressHandler_GetUnlock(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewProgressHandler(mockService)

	tests := []struct {
		name           string
		gradeParam     string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "正常系: 解放済み",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 1).Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"extensive_unlocked":true}`,
		},
		{
			name:       "正常系: 未解放",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 1).Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"extensive_unlocked":false}`,
		},
		{
			name:           "異常系: 不正な学年",
			gradeParam:     "-1",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/grades/"+tt.gradeParam+"/unlock", nil)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{"grade": tt.gradeParam}))

			rr := httptest.NewRecorder()
			handler.GetUnlock(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
