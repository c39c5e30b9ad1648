// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")

	// ErrUnknownBook はカタログに存在しないブックIDが指定された場合のエラー。
	// リトライしても解消しない (呼び出し側のバグ、または古いカタログ)。
	ErrUnknownBook = errors.New("unknown book")
	// ErrPageOutOfRange はページ番号が 1..totalPages の範囲外の場合のエラー。
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrStorageUnavailable は永続化バックエンドの一時的な障害。
	// 呼び出し側は同じ更新をリトライしてよい (エンジン側では自動リトライしない)。
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージとラップ元のエラーを保持するカスタムエラー型
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

// Unwrap は errors.Is / errors.As でのエラー判定用
func (e *AppError) Unwrap() error {
	return e.err
}
