// Package handler はHTTPハンドラーを提供する。
//
// 各ハンドラーは画面に相当し、状態を一切持たない。状態の変更は必ず
// セッションコントローラーの操作を経由し、レスポンスはビュールーターが
// 導出した表示モデルか、操作結果の最小限の確認情報のみを返す。
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/smartcatalog/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするセッション操作のインターフェース。
type AuthServiceInterface interface {
	// Login はメールアドレスでログインする。
	Login(ctx context.Context, email string) error
	// Register は新規ユーザーを登録し、そのユーザーでログインする。
	Register(ctx context.Context, name, email string) error
	// Logout はログイン中ユーザーを解除する。
	Logout(ctx context.Context)
	// CurrentUser はログイン中ユーザーを返す。未ログイン時はnilを返す。
	CurrentUser(ctx context.Context) *model.User
}

// AuthHandler はログイン・登録・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// --- リクエスト・レスポンス型 ---

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email string `json:"email"`
}

// registerRequest は登録リクエストのボディ。
type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// userResponse はログイン中ユーザーのレスポンス。
type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsApproved bool   `json:"isApproved"`
	PriceTier  string `json:"priceListId"`
	Avatar     string `json:"avatar,omitempty"`
	IsAdmin    bool   `json:"isAdmin,omitempty"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsApproved: u.IsApproved,
		PriceTier:  string(u.PriceTier),
		Avatar:     u.AvatarURL,
		IsAdmin:    u.IsAdmin,
	}
}

// Login はメールアドレスでログインする。
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.Login(r.Context(), req.Email); err != nil {
		handleServiceError(w, err)
		return
	}

	user := h.service.CurrentUser(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(user))
}

// Register は新規ユーザーを登録し、そのユーザーでログインする。
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if err := h.service.Register(r.Context(), req.Name, req.Email); err != nil {
		handleServiceError(w, err)
		return
	}

	user := h.service.CurrentUser(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toUserResponse(user))
}

// Logout はログイン中ユーザーを解除する。
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me は現在のログインユーザー情報を返す。
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.service.CurrentUser(r.Context())
	if user == nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(user))
}
