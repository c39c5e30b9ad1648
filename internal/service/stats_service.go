// internal/service/stats_service.go
package service

import (
	"context"
	"sort"

	"go_5_read_keep/internal/catalog"
	"go_5_read_keep/internal/config"
	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/model"
	"go_5_read_keep/internal/repository"
)

// StatsService は進捗マッピングとカタログからプロフィール画面用のサマリを導出します。
// 状態は持たず、呼び出しごとに現在のスナップショットから再計算します。
// データ量は数十件程度なのでキャッシュは持ちません (古くなるリスクだけが増える)。
type StatsService interface {
	Summarize(ctx context.Context, grade int) (*model.Stats, error)
}

type statsService struct {
	catalog catalog.Catalog
	store   repository.ProgressStore
	cfg     *config.Config
}

func NewStatsService(cat catalog.Catalog, store repository.ProgressStore, cfg *config.Config) StatsService {
	return &statsService{
		catalog: cat,
		store:   store,
		cfg:     cfg,
	}
}

func (s *statsService) Summarize(ctx context.Context, grade int) (*model.Stats, error) {
	logger := middleware.GetLogger(ctx).With("grade", grade)

	progress, err := s.store.Get(ctx, grade)
	if err != nil {
		logger.Error("Failed to load progress for stats", "error", err)
		return nil, err
	}

	stats := &model.Stats{
		Grade:          grade,
		RecentActivity: []model.RecentActivity{},
	}

	records := make([]model.ProgressRecord, 0, len(progress))
	for _, record := range progress {
		records = append(records, record)

		// 現在位置の合計。ページを戻すと合計も減る仕様
		stats.TotalPagesRead += record.CurrentPage

		if record.Completed {
			stats.CompletedTotal++
			// 区分はレコードに保存したスナップショットで数える
			switch record.BookType {
			case model.CategoryIntensive:
				stats.CompletedIntensive++
			case model.CategoryExtensive:
				stats.CompletedExtensive++
			}
		}
	}

	// 最終更新の新しい順に並べ、上位のみ返す
	sort.Slice(records, func(i, j int) bool {
		return records[i].LastRead.After(records[j].LastRead)
	})
	limit := s.cfg.App.RecentActivityLimit
	if limit <= 0 {
		limit = config.DefaultRecentActivityLimit
	}
	if len(records) > limit {
		records = records[:limit]
	}
	for _, record := range records {
		stats.RecentActivity = append(stats.RecentActivity, model.RecentActivity{
			BookID:      record.BookID,
			BookTitle:   record.BookTitle,
			BookType:    record.BookType,
			CurrentPage: record.CurrentPage,
			TotalPages:  record.TotalPages,
			Percent:     record.Percent(),
			Completed:   record.Completed,
			LastRead:    record.LastRead,
		})
	}

	intensive, _ := s.catalog.BooksForGrade(grade)
	stats.Badges = model.Badges{
		FirstBook:         stats.CompletedTotal >= 1,
		FoundationBuilder: len(intensive) > 0 && stats.CompletedIntensive == len(intensive),
		SpeedReader:       stats.CompletedTotal >= config.BadgeSpeedReaderBooks,
		Bookworm:          stats.TotalPagesRead >= config.BadgeBookwormPages,
	}

	logger.Debug("Stats summarized",
		"completed_total", stats.CompletedTotal,
		"total_pages_read", stats.TotalPagesRead,
	)
	return stats, nil
}
