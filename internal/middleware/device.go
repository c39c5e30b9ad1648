// internal/middleware/device.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/webutil"

	"github.com/google/uuid"
)

// DeviceContextMiddleware は X-Device-ID ヘッダーのUUIDをコンテキストに設定します。
// 認証ではなく、ログとトラブルシュート用に端末を識別するだけです。
// required が false の場合、ヘッダーが無くてもリクエストは通します。
func DeviceContextMiddleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			deviceIDStr := r.Header.Get("X-Device-ID")
			if deviceIDStr == "" {
				if required {
					logger.Warn("Device header missing")
					appErr := model.NewAppError("DEVICE_ID_REQUIRED", "X-Device-IDヘッダーが必要です。", "", model.ErrInvalidInput)
					webutil.HandleError(w, logger, appErr)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			deviceID, err := uuid.Parse(deviceIDStr)
			if err != nil {
				logger.Warn("Invalid device id format", slog.String("device_id", deviceIDStr))
				appErr := model.NewAppError("INVALID_DEVICE_ID", "X-Device-IDの形式が正しくありません。", "", model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.DeviceIDKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetDeviceIDFromContext はコンテキストから端末IDを取得します
func GetDeviceIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	deviceID, ok := ctx.Value(model.DeviceIDKey).(uuid.UUID)
	return deviceID, ok
}
