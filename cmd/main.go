// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_read_keep/internal/catalog"
	"go_5_read_keep/internal/config"
	"go_5_read_keep/internal/handlers"
	"go_5_read_keep/internal/middleware"
	"go_5_read_keep/internal/repository"
	"go_5_read_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発時は読みやすい tint ハンドラを使う
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. カタログ読み込み (起動時に1回。以後は不変)
	bookCatalog, err := catalog.Load(config.Cfg.App.CatalogPath)
	if err != nil {
		slog.Error("Error loading book catalog", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. 永続化バックエンドの初期化
	var kv repository.KVStore
	var db *gorm.DB
	if config.Cfg.Database.Driver == "memory" {
		slog.Warn("Using in-memory KV store, progress will not survive a restart")
		kv = repository.NewMemoryKVStore()
	} else {
		db, err = repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
		if err != nil {
			slog.Error("Error initializing database", slog.Any("error", err))
			os.Exit(1)
		}
		sqlDB, err := db.DB()
		if err != nil {
			slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}()
		kv = repository.NewGormKVStore(db, logger)
	}

	// 3. Dependency Injection
	progressStore := repository.NewKVProgressStore(kv, logger)
	settingsStore := repository.NewKVSettingsStore(kv, logger)

	progressService := service.NewProgressService(bookCatalog, progressStore)
	statsService := service.NewStatsService(bookCatalog, progressStore, &config.Cfg)
	settingsService := service.NewSettingsService(settingsStore)

	progressHandler := handlers.NewProgressHandler(progressService)
	statsHandler := handlers.NewStatsHandler(statsService)
	catalogHandler := handlers.NewCatalogHandler(bookCatalog, progressService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.DeviceContextMiddleware(config.Cfg.App.RequireDeviceID))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/grades/{grade}", func(r chi.Router) {
			r.Get("/books", catalogHandler.GetGradeBooks)
			r.Get("/progress", progressHandler.GetProgress)
			r.Delete("/progress", progressHandler.ResetProgress)
			r.Put("/books/{book_id}/progress", progressHandler.UpdateProgress)
			r.Get("/stats", statsHandler.GetStats)
			r.Get("/unlock", progressHandler.GetUnlock)
		})
		r.Get("/books/{book_id}", catalogHandler.GetBook)
		r.Route("/settings", func(r chi.Router) {
			r.Get("/grade", settingsHandler.GetSelectedGrade)
			r.Put("/grade", settingsHandler.PutSelectedGrade)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil {
				slog.ErrorContext(r.Context(), "Health check failed: could not get DB object", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(r.Context()); err != nil {
				slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
