// internal/repository/kv_gorm.go
package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry は kv_entries テーブルの1行を表します
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key;size:255"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

type gormKVStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormKVStore はGORM接続の上にKVStoreを構築します
func NewGormKVStore(db *gorm.DB, logger *slog.Logger) KVStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &gormKVStore{db: db, logger: logger}
}

func (s *gormKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	result := s.db.WithContext(ctx).First(&entry, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// キーが無いのは正常な「未保存」状態
			return "", false, nil
		}
		s.logger.Error("Failed to read kv entry", "key", key, "error", result.Error)
		return "", false, result.Error
	}
	return entry.Value, true, nil
}

func (s *gormKVStore) Set(ctx context.Context, key string, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	// 同一キーへの書き込みは常に最後の書き込みが勝つ
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		s.logger.Error("Failed to write kv entry", "key", key, "error", result.Error)
		return result.Error
	}
	return nil
}

func (s *gormKVStore) Remove(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key)
	if result.Error != nil {
		s.logger.Error("Failed to remove kv entry", "key", key, "error", result.Error)
		return result.Error
	}
	// 削除対象が無くてもエラーにはしない
	return nil
}
