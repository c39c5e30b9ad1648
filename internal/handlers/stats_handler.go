// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/service"
	"go_5_read_keep/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetStats は学年の進捗サマリ (カウント・直近の活動・バッジ) を返すハンドラ
// GET /api/v1/grades/{grade}/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStats"))

	grade, err := parseGradeParam(r)
	if err != nil {
		logger.Warn("Invalid grade in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("grade", grade))

	stats, err := h.service.Summarize(r.Context(), grade)
	if err != nil {
		logger.Error("Error summarizing grade stats", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
