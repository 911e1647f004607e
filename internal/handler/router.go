package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/smartcatalog/internal/middleware"
	"github.com/hitoshi/smartcatalog/internal/view"
)

// SessionService はセッションコントローラーが提供する全操作のインターフェース。
// 各ハンドラーはこのうち必要な部分集合のみに依存する。
type SessionService interface {
	AuthServiceInterface
	ViewServiceInterface
	CatalogSessionInterface
	CartServiceInterface
	AdminServiceInterface
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	StatusObserver    middleware.StatusObserver
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// セッション操作（Controllerが全インターフェースを満たす）
	Session SessionService

	// 商品カタログ・ユーザーディレクトリ（読み取り専用）
	Catalog   CatalogServiceInterface
	Directory view.Directory

	// /metrics エンドポイント
	MetricsHandler http.Handler
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → SecurityHeaders → CORS → RateLimit
//
// ログイン・登録には認証試行用のレート制限を追加で適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.StatusObserver))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	authHandler := NewAuthHandler(deps.Session)
	viewHandler := NewViewHandler(deps.Session, deps.Catalog, deps.Directory)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Session)
	cartHandler := NewCartHandler(deps.Session)
	adminHandler := NewAdminHandler(deps.Session)

	// ヘルスチェック（レート制限の外）
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheusメトリクス
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 認証（ログイン・登録には認証試行用のレート制限を追加）
		r.Route("/api/auth", func(r chi.Router) {
			r.With(deps.RateLimiter.AuthMiddleware()).Post("/login", authHandler.Login)
			r.With(deps.RateLimiter.AuthMiddleware()).Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		// 画面表示モデルとナビゲーション
		r.Get("/api/view", viewHandler.GetView)
		r.Post("/api/navigate", viewHandler.Navigate)

		// 商品カタログ
		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Post("/{id}/select", viewHandler.SelectProduct)
		})
		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCategories)
			r.Post("/select", catalogHandler.SelectCategory)
		})
		r.Route("/api/search", func(r chi.Router) {
			r.Get("/", catalogHandler.Search)
			r.Put("/query", catalogHandler.SetSearchQuery)
		})

		// カート
		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items", cartHandler.UpdateQuantity)
			r.Delete("/items", cartHandler.RemoveItem)
			r.Post("/quick-add", cartHandler.QuickAddItem)
			r.Patch("/grid", cartHandler.UpdateQuantityFromGrid)
			r.Post("/checkout", cartHandler.Checkout)
			r.Post("/continue", cartHandler.ContinueShopping)
		})

		// ユーザー管理（権限検証はセッションコントローラー側で行う）
		r.Route("/api/admin/users", func(r chi.Router) {
			r.Get("/", adminHandler.ListUsers)
			r.Post("/{id}/approve", adminHandler.ApproveUser)
			r.Put("/{id}/tier", adminHandler.SetUserTier)
		})
	})

	return r
}
