package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/session"
)

// CartServiceInterface はカートハンドラーが必要とするセッション操作のインターフェース。
type CartServiceInterface interface {
	// AddToCart は商品をカートに追加する。
	AddToCart(ctx context.Context, productID string, quantity int, packaging string) error
	// QuickAdd は商品を数量1、先頭の荷姿でカートに追加する。
	QuickAdd(ctx context.Context, productID string) error
	// UpdateCartQuantity は指定明細に数量差分を適用する。
	UpdateCartQuantity(ctx context.Context, productID, packaging string, delta int) error
	// UpdateCartQuantityFromGrid は一覧画面からの数量変更を処理する。
	UpdateCartQuantityFromGrid(ctx context.Context, productID string, delta int) error
	// RemoveFromCart は明細を削除する。
	RemoveFromCart(ctx context.Context, productID, packaging string) error
	// Checkout は注文完了画面に遷移する。カートは保持される。
	Checkout(ctx context.Context) error
	// ContinueShopping はカートを消去してcatalogに戻る。
	ContinueShopping(ctx context.Context) error
	// Snapshot は承認ゲート適用済みのセッション状態を返す。
	Snapshot(ctx context.Context) session.Snapshot
}

// CartHandler はカート操作のHTTPハンドラー。
type CartHandler struct {
	service CartServiceInterface
}

// NewCartHandler はCartHandlerを生成する。
func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// --- リクエスト・レスポンス型 ---

// addToCartRequest はカート追加リクエストのボディ。
type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Packaging string `json:"packaging"`
}

// quickAddRequest はクイック追加リクエストのボディ。
type quickAddRequest struct {
	ProductID string `json:"productId"`
}

// updateQuantityRequest は数量変更リクエストのボディ。
// Packagingが空の場合はその商品の全荷姿にマッチする。
type updateQuantityRequest struct {
	ProductID string `json:"productId"`
	Packaging string `json:"packaging"`
	Delta     int    `json:"delta"`
}

// gridUpdateRequest は一覧画面からの数量変更リクエストのボディ。
type gridUpdateRequest struct {
	ProductID string `json:"productId"`
	Delta     int    `json:"delta"`
}

// removeRequest は明細削除リクエストのボディ。
type removeRequest struct {
	ProductID string `json:"productId"`
	Packaging string `json:"packaging"`
}

// cartResponse はカート状態のレスポンス。
type cartResponse struct {
	Lines []model.CartLine `json:"lines"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

// writeCart は現在のカート状態をレスポンスとして書き込む。
func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{
		Lines: snap.CartLines,
		Count: snap.CartCount,
		Total: snap.CartTotal,
	})
}

// GetCart は現在のカート状態を返す。
// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r)
}

// AddItem は商品をカートに追加し、更新後のカート状態を返す。
// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.AddToCart(r.Context(), req.ProductID, req.Quantity, req.Packaging); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// QuickAddItem は商品を数量1、先頭の荷姿でカートに追加する。
// POST /api/cart/quick-add
func (h *CartHandler) QuickAddItem(w http.ResponseWriter, r *http.Request) {
	var req quickAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.QuickAdd(r.Context(), req.ProductID); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// UpdateQuantity は指定明細に数量差分を適用する。
// PATCH /api/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.UpdateCartQuantity(r.Context(), req.ProductID, req.Packaging, req.Delta); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// UpdateQuantityFromGrid は一覧画面からの数量変更を処理する。
// PATCH /api/cart/grid
func (h *CartHandler) UpdateQuantityFromGrid(w http.ResponseWriter, r *http.Request) {
	var req gridUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.UpdateCartQuantityFromGrid(r.Context(), req.ProductID, req.Delta); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// RemoveItem は (商品ID, 荷姿) に完全一致する明細を削除する。
// DELETE /api/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.RemoveFromCart(r.Context(), req.ProductID, req.Packaging); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// Checkout は注文完了画面に遷移する。完了画面でも表示できるようカートは保持される。
// POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Checkout(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}

// ContinueShopping はカートを消去してcatalogに戻る。
// POST /api/cart/continue
func (h *CartHandler) ContinueShopping(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ContinueShopping(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}
	h.writeCart(w, r)
}
