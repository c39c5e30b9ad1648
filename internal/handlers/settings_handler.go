// internal/handlers/settings_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/service"
	"go_5_read_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

type selectedGradeResponse struct {
	Grade    int  `json:"grade"`
	Selected bool `json:"selected"`
}

// GetSelectedGrade は保存済みの選択中学年を返すハンドラ。
// 未設定は selected=false で表現する (エラーではない)
// GET /api/v1/settings/grade
func (h *SettingsHandler) GetSelectedGrade(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetSelectedGrade"))

	grade, found, err := h.service.SelectedGrade(r.Context())
	if err != nil {
		logger.Error("Error loading selected grade", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, selectedGradeResponse{Grade: grade, Selected: found}, logger)
}

// PutSelectedGrade は選択中学年を保存するハンドラ
// PUT /api/v1/settings/grade
func (h *SettingsHandler) PutSelectedGrade(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PutSelectedGrade"))

	var req model.PutSelectedGradeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
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

	if err := h.service.SetSelectedGrade(r.Context(), req.Grade); err != nil {
		logger.Error("Error saving selected grade", slog.Int("grade", req.Grade), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Selected grade saved", slog.Int("grade", req.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, selectedGradeResponse{Grade: req.Grade, Selected: true}, logger)
}
