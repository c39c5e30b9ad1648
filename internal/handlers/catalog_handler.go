// internal/handlers/catalog_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_read_keep/internal/catalog"
	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/service"
	"go_5_read_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog         catalog.Catalog
	progressService service.ProgressService
}

func NewCatalogHandler(cat catalog.Catalog, ps service.ProgressService) *CatalogHandler {
	return &CatalogHandler{
		catalog:         cat,
		progressService: ps,
	}
}

type gradeBooksResponse struct {
	Grade             int           `json:"grade"`
	Intensive         []*model.Book `json:"intensive"`
	Extensive         []*model.Book `json:"extensive"`
	ExtensiveUnlocked bool          `json:"extensive_unlocked"`
}

// GetGradeBooks は学年のブック一覧と多読の解放状態を1回で返すハンドラ。
// クライアントは多読棚の表示可否をこのフラグで判断する (最終的なゲートはサーバ側)
// GET /api/v1/grades/{grade}/books
func (h *CatalogHandler) GetGradeBooks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetGradeBooks"))

	grade, err := parseGradeParam(r)
	if err != nil {
		logger.Warn("Invalid grade in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("grade", grade))

	intensive, extensive := h.catalog.BooksForGrade(grade)

	unlocked, err := h.progressService.IsTierUnlocked(r.Context(), grade)
	if err != nil {
		logger.Error("Error evaluating tier unlock for grade books", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := gradeBooksResponse{
		Grade:             grade,
		Intensive:         intensive,
		Extensive:         extensive,
		ExtensiveUnlocked: unlocked,
	}
	logger.Info("Grade books listed",
		slog.Int("intensive", len(intensive)),
		slog.Int("extensive", len(extensive)),
		slog.Bool("unlocked", unlocked),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetBook は1冊分のブック情報を返すハンドラ。
// pdf_url を含むので、クライアントはこれを外部ビューアで開く
// GET /api/v1/books/{book_id}
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetBook"))

	bookID := chi.URLParam(r, "book_id")
	logger = logger.With(slog.String("book_id", bookID))

	book, err := h.catalog.FindByID(bookID)
	if err != nil {
		if errors.Is(err, model.ErrUnknownBook) {
			logger.Info("Book not found in catalog")
			appErr := model.NewAppError("UNKNOWN_BOOK", "指定されたブックはカタログに存在しません。", "book_id", model.ErrUnknownBook)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error finding book", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, book, logger)
}
