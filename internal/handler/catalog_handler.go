package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/smartcatalog/internal/model"
)

// CatalogServiceInterface はカタログハンドラーが必要とする商品カタログのインターフェース。
type CatalogServiceInterface interface {
	ListAll() []model.Product
	ListCategories() []model.Category
	ListByCategory(main, sub string) []model.Product
	Search(query string) []model.Product
}

// CatalogSessionInterface はカタログハンドラーが必要とするセッション操作のインターフェース。
type CatalogSessionInterface interface {
	// SelectCategory はカテゴリフィルタを設定してcatalogに遷移する。
	SelectCategory(ctx context.Context, main, sub string) error
	// SetSearchQuery は検索文字列を設定する。
	SetSearchQuery(ctx context.Context, query string) error
}

// CatalogHandler は商品カタログのHTTPハンドラー。
type CatalogHandler struct {
	catalog CatalogServiceInterface
	session CatalogSessionInterface
}

// NewCatalogHandler はCatalogHandlerを生成する。
func NewCatalogHandler(catalog CatalogServiceInterface, session CatalogSessionInterface) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		session: session,
	}
}

// selectCategoryRequest はカテゴリ選択リクエストのボディ。
type selectCategoryRequest struct {
	MainCategory string `json:"mainCategory"`
	SubCategory  string `json:"subCategory"`
}

// searchRequest は検索文字列設定リクエストのボディ。
type searchRequest struct {
	Query string `json:"query"`
}

// ListProducts はカテゴリフィルタ付きの商品一覧を返す。
// フィルタ未指定時は全商品を返す。
// GET /api/products?main=GROCERY&sub=RICE
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	main := r.URL.Query().Get("main")
	sub := r.URL.Query().Get("sub")

	var products []model.Product
	if main == "" && sub == "" {
		products = h.catalog.ListAll()
	} else {
		products = h.catalog.ListByCategory(main, sub)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// ListCategories はカテゴリ構成を返す。
// GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.ListCategories())
}

// Search は商品を部分一致で検索する。
// GET /api/search?q=rice
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results := h.catalog.Search(query)
	if results == nil {
		results = []model.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// SelectCategory はカテゴリフィルタを設定してcatalogに遷移する。
// POST /api/categories/select
func (h *CatalogHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req selectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.session.SelectCategory(r.Context(), req.MainCategory, req.SubCategory); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSearchQuery はセッションの検索文字列を設定する。画面は遷移しない。
// PUT /api/search/query
func (h *CatalogHandler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.session.SetSearchQuery(r.Context(), req.Query); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
