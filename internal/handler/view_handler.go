package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/session"
	"github.com/hitoshi/smartcatalog/internal/view"
)

// ViewServiceInterface はビューハンドラーが必要とするセッション操作のインターフェース。
type ViewServiceInterface interface {
	// Snapshot は承認ゲート適用済みのセッション状態を返す。
	Snapshot(ctx context.Context) session.Snapshot
	// Navigate は指定画面への遷移を要求する。
	Navigate(ctx context.Context, location model.Location) error
	// NavigateToProduct は商品を選択して詳細画面に遷移する。
	NavigateToProduct(ctx context.Context, productID string) error
}

// ViewHandler は画面表示モデルの取得とナビゲーションのHTTPハンドラー。
type ViewHandler struct {
	service   ViewServiceInterface
	catalog   view.Catalog
	directory view.Directory
}

// NewViewHandler はViewHandlerを生成する。
func NewViewHandler(service ViewServiceInterface, catalog view.Catalog, directory view.Directory) *ViewHandler {
	return &ViewHandler{
		service:   service,
		catalog:   catalog,
		directory: directory,
	}
}

// navigateRequest はナビゲーションリクエストのボディ。
type navigateRequest struct {
	Location string `json:"location"`
}

// GetView はアクティブな画面の表示モデルを返す。
// GET /api/view
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot(r.Context())
	vm := view.Resolve(snap, h.catalog, h.directory)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vm)
}

// Navigate は画面遷移を要求し、遷移後の表示モデルを返す。
// 未承認ユーザーの遷移要求は承認ゲートにより無視されるため、
// 返される表示モデルの画面が要求と一致するとは限らない。
// POST /api/navigate
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.Navigate(r.Context(), model.Location(req.Location)); err != nil {
		handleServiceError(w, err)
		return
	}

	h.GetView(w, r)
}

// SelectProduct は商品を選択して詳細画面に遷移し、遷移後の表示モデルを返す。
// POST /api/products/{id}/select
func (h *ViewHandler) SelectProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.NavigateToProduct(r.Context(), productID); err != nil {
		handleServiceError(w, err)
		return
	}

	h.GetView(w, r)
}
