package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/smartcatalog/internal/model"
)

// AdminServiceInterface は管理ハンドラーが必要とするセッション操作のインターフェース。
// 権限検証（管理者チェック）はセッションコントローラー側で行われる。
type AdminServiceInterface interface {
	// ListUsers は全ユーザーを返す。
	ListUsers(ctx context.Context) ([]model.User, error)
	// ApproveUser は指定ユーザーの登録を承認する。
	ApproveUser(ctx context.Context, userID string) (*model.User, error)
	// SetUserTier は指定ユーザーの価格区分を変更する。
	SetUserTier(ctx context.Context, userID string, tier model.PriceTier) (*model.User, error)
}

// AdminHandler はユーザー管理のHTTPハンドラー。
type AdminHandler struct {
	service AdminServiceInterface
}

// NewAdminHandler はAdminHandlerを生成する。
func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// setTierRequest は価格区分変更リクエストのボディ。
type setTierRequest struct {
	Tier string `json:"priceListId"`
}

// ListUsers は全ユーザーの一覧を返す。
// GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ApproveUser は指定ユーザーの登録を承認する。
// POST /api/admin/users/{id}/approve
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.service.ApproveUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(user))
}

// SetUserTier は指定ユーザーの価格区分を変更する。
// PUT /api/admin/users/{id}/tier
func (h *AdminHandler) SetUserTier(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req setTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	user, err := h.service.SetUserTier(r.Context(), userID, model.PriceTier(req.Tier))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(user))
}
