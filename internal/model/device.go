// internal/model/device.go
package model

// コンテキストキーの衝突を避けるための非公開型
type contextKey string

// DeviceIDKey はリクエストコンテキストに端末IDを格納するためのキーです
const DeviceIDKey contextKey = "deviceID"
