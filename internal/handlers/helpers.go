// internal/handlers/helpers.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go_5_read_keep/internal/model"

	"github.com/go-chi/chi/v5"
)

// parseGradeParam はURLパラメータの学年を検証付きで取り出します
func parseGradeParam(r *http.Request) (int, error) {
	gradeStr := chi.URLParam(r, "grade")
	grade, err := strconv.Atoi(gradeStr)
	if err != nil || grade < model.MinGrade || grade > model.MaxGrade {
		return 0, model.NewAppError(
			"INVALID_URL_PARAM",
			fmt.Sprintf("gradeは%d〜%dの整数で指定してください。", model.MinGrade, model.MaxGrade),
			"grade",
			model.ErrInvalidInput,
		)
	}
	return grade, nil
}
