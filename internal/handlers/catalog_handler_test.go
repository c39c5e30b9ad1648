package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_read_keep/internal/catalog"
	"go_5_read_keep/internal/handlers"
	"go_5_read_keep/internal/model"

	svc_mocks "go_5_read_keep/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: テスト用カタログ ---
func newHandlerTestCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]*model.Book{
		{ID: "g1-int-001", Grade: 1, Category: model.CategoryIntensive, Title: "精読A", TotalPages: 10, PDFURL: "https://books.example.com/g1/a.pdf"},
		{ID: "g1-ext-001", Grade: 1, Category: model.CategoryExtensive, Title: "多読A", TotalPages: 8, PDFURL: "https://books.example.com/g1/b.pdf"},
	})
	require.NoError(t, err)
	return c
}

// --- Test GetGradeBooks ---
func TestCatalogHandler_GetGradeBooks(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewCatalogHandler(newHandlerTestCatalog(t), mockService)

	tests := []struct {
		name           string
		gradeParam     string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "正常系: 一覧と解放状態 (未解放)",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 1).Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"extensive_unlocked":false`,
		},
		{
			name:       "正常系: 一覧と解放状態 (解放済み)",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 1).Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"extensive_unlocked":true`,
		},
		{
			name:       "正常系: カタログの無い学年も空リストで返す",
			gradeParam: "9",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 9).Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"intensive":[]`,
		},
		{
			name:           "異常系: 不正な学年",
			gradeParam:     "13",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:       "異常系: 解放判定でストレージ障害",
			gradeParam: "1",
			setupMock: func() {
				mockService.On("IsTierUnlocked", mock.Anything, 1).
					Return(false, model.NewAppError("STORAGE_UNAVAILABLE", "進捗の保存領域にアクセスできませんでした。", "", model.ErrStorageUnavailable)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/grades/"+tt.gradeParam+"/books", nil)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{"grade": tt.gradeParam}))

			rr := httptest.NewRecorder()
			handler.GetGradeBooks(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetBook ---
func TestCatalogHandler_GetBook(t *testing.T) {
	mockService := new(svc_mocks.ProgressService)
	handler := handlers.NewCatalogHandler(newHandlerTestCatalog(t), mockService)

	tests := []struct {
		name           string
		bookIDParam    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: PDFのURLを含むブック情報",
			bookIDParam:    "g1-int-001",
			expectedStatus: http.StatusOK,
			expectedBody:   `"pdf_url":"https://books.example.com/g1/a.pdf"`,
		},
		{
			name:           "異常系: 未知のブックID",
			bookIDParam:    "no-such-book",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "UNKNOWN_BOOK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJsonRequest(t, http.MethodGet, "/books/"+tt.bookIDParam, nil)
			req = req.WithContext(contextWithChiURLParams(req.Context(), map[string]string{"book_id": tt.bookIDParam}))

			rr := httptest.NewRecorder()
			handler.GetBook(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}
