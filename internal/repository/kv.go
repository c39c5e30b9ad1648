// internal/repository/kv.go
package repository

import "context"

// KVStore は文字列キー・バリューの永続化バックエンドです。
// ProgressStore / SettingsStore はこの上の薄い型付きレイヤとして実装されます。
// キーは "progress_grade_<grade>" と "selectedGrade" の形式を使います。
type KVStore interface {
	// Get は値と存在フラグを返します。キーが無いことはエラーではありません。
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
