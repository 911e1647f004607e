// Package app はアプリケーションの起動・配線・シャットダウンを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/smartcatalog/internal/catalog"
	"github.com/hitoshi/smartcatalog/internal/config"
	"github.com/hitoshi/smartcatalog/internal/directory"
	"github.com/hitoshi/smartcatalog/internal/handler"
	"github.com/hitoshi/smartcatalog/internal/kvs"
	"github.com/hitoshi/smartcatalog/internal/logger"
	"github.com/hitoshi/smartcatalog/internal/metrics"
	"github.com/hitoshi/smartcatalog/internal/middleware"
	"github.com/hitoshi/smartcatalog/internal/security"
	"github.com/hitoshi/smartcatalog/internal/session"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	switch cmd {
	case CommandReset:
		return runReset(cfg)
	case CommandServe:
		return runServe(cfg)
	default:
		return runServe(cfg)
	}
}

// openStore は設定に応じた外部ストアを開く。
// REDIS_ADDRが未設定の場合はプロセス内のメモリストアで動作する。
func openStore(cfg *config.Config) (kvs.Store, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("no redis address configured, using in-memory store")
		return kvs.NewMemoryStore(), func() {}, nil
	}

	store, err := kvs.NewRedisStore(kvs.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("redis connection established", slog.String("addr", cfg.RedisAddr))
	closeFn := func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close redis connection", slog.String("error", err.Error()))
		}
	}
	return store, closeFn, nil
}

// runServe はAPIサーバーモードで起動する。
// ストアを開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. 外部ストア
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()

	// 2. ドメインサービスの初期化と永続化データの復元
	dir := directory.NewService(store, security.NewNameSanitizer())
	if err := dir.Load(ctx); err != nil {
		return fmt.Errorf("failed to load user directory: %w", err)
	}

	cat := catalog.NewService()

	// 3. メトリクスの初期化
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 4. セッションコントローラーの初期化と前回セッションの復元
	ctrl := session.NewController(dir, cat, store, collector)
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	// 5. ルーターの構築
	rateLimiterCfg := middleware.RateLimiterConfig{
		GeneralRate:  rateLimitPerSecond(cfg.RateLimitGeneral),
		GeneralBurst: cfg.RateLimitGeneral,
		AuthRate:     rateLimitPerSecond(cfg.RateLimitAuth),
		AuthBurst:    cfg.RateLimitAuth,
	}

	deps := &handler.RouterDeps{
		Logger:            slog.Default(),
		StatusObserver:    collector,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       middleware.NewRateLimiter(rateLimiterCfg),
		Session:           ctrl,
		Catalog:           cat,
		Directory:         dir,
		MetricsHandler:    metrics.Handler(registry),
	}

	router := handler.NewRouter(deps)

	// 6. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runReset は永続化済みのユーザー一覧とセッションのエントリを消去する。
// 次回のserve起動は組み込みのシードユーザーから開始される。
func runReset(cfg *config.Config) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, key := range []string{kvs.KeyUsersList, kvs.KeyCurrentUser} {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
		slog.Info("deleted persisted entry", slog.String("key", key))
	}

	slog.Info("reset completed")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// rateLimitPerSecond はreq/min単位の設定値をreq/secのレートに変換する。
func rateLimitPerSecond(perMinute int) rate.Limit {
	return rate.Limit(float64(perMinute) / 60.0)
}
