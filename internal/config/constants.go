// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ReadKeep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultDatabaseDriver      = "sqlite"
	DefaultSQLitePath          = "read_keep.db"
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "json"
	DefaultCatalogPath         = "configs/catalog.yaml"
	DefaultRecentActivityLimit = 5
)

// バッジ解放の閾値
const (
	BadgeSpeedReaderBooks = 5   // speed_reader: 読了冊数
	BadgeBookwormPages    = 100 // bookworm: 累計ページ数
)
