// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/service"
	"go_5_read_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// progressResponse はAPIに返す1冊分の進捗表現です
type progressResponse struct {
	BookID      string             `json:"book_id"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	Percent     int                `json:"percent"`
	Completed   bool               `json:"completed"`
	LastRead    string             `json:"last_read"`
	BookTitle   string             `json:"book_title"`
	BookType    model.BookCategory `json:"book_type"`
}

func toProgressResponse(r model.ProgressRecord) progressResponse {
	return progressResponse{
		BookID:      r.BookID,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
		Percent:     r.Percent(),
		Completed:   r.Completed,
		LastRead:    r.LastRead.Format("2006-01-02T15:04:05Z07:00"),
		BookTitle:   r.BookTitle,
		BookType:    r.BookType,
	}
}

// UpdateProgress はページ位置の更新を受け付けるハンドラ
// PUT /api/v1/grades/{grade}/books/{book_id}/progress
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateProgress"))

	grade, err := parseGradeParam(r)
	if err != nil {
		logger.Warn("Invalid grade in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	bookID := chi.URLParam(r, "book_id")
	logger = logger.With(slog.Int("grade", grade), slog.String("book_id", bookID))

	var req model.UpdateProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	record, err := h.service.RecordPageUpdate(r.Context(), grade, bookID, req.Page)
	if err != nil {
		if errors.Is(err, model.ErrUnknownBook) || errors.Is(err, model.ErrPageOutOfRange) {
			logger.Warn("Page update rejected", slog.Any("error", err))
		} else {
			logger.Error("Error recording page update", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress updated", slog.Int("page", record.CurrentPage), slog.Bool("completed", record.Completed))
	webutil.RespondWithJSON(w, http.StatusOK, toProgressResponse(*record), logger)
}

// GetProgress は学年の進捗マッピングを返すハンドラ
// GET /api/v1/grades/{grade}/progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

	grade, err := parseGradeParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("grade", grade))

	progress, err := h.service.GetGradeProgress(r.Context(), grade)
	if err != nil {
		logger.Error("Error loading grade progress", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	responses := make([]progressResponse, 0, len(progress))
	for _, record := range progress {
		responses = append(responses, toProgressResponse(record))
	}
	webutil.RespondWithJSON(w, http.StatusOK, responses, logger)
}

// ResetProgress は学年の進捗をすべて削除するハンドラ。元に戻せません
// DELETE /api/v1/grades/{grade}/progress
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ResetProgress"))

	grade, err := parseGradeParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("grade", grade))

	if err := h.service.ResetGrade(r.Context(), grade); err != nil {
		logger.Error("Error resetting grade progress", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grade progress reset")
	w.WriteHeader(http.StatusNoContent)
}

// GetUnlock は多読リストの解放状態を返すハンドラ
// GET /api/v1/grades/{grade}/unlock
func (h *ProgressHandler) GetUnlock(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetUnlock"))

	grade, err := parseGradeParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	unlocked, err := h.service.IsTierUnlocked(r.Context(), grade)
	if err != nil {
		logger.Error("Error evaluating tier unlock", slog.Int("grade", grade), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]bool{"extensive_unlocked": unlocked}, logger)
}
