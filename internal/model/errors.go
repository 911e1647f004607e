// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
// このドメインのエラーはすべて局所的に回復可能で、プロセスを停止させない。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, cart, admin, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeAccountNotFound  = "ACCOUNT_NOT_FOUND"
	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrCodeInvalidSelection = "INVALID_SELECTION"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeNotApproved      = "NOT_APPROVED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidTier      = "INVALID_TIER"
	ErrCodeInvalidLocation  = "INVALID_LOCATION"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
)

// NewAccountNotFoundError はログイン時にアカウントが見つからない場合のエラーを生成する。
func NewAccountNotFoundError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeAccountNotFound,
		Message:  fmt.Sprintf("アカウントが見つかりません: %s", email),
		Category: "auth",
		Action:   "先に登録するか、デモ用メールアドレスを使用してください。",
	}
}

// NewDuplicateEmailError は登録済みメールアドレスでの再登録エラーを生成する。
func NewDuplicateEmailError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateEmail,
		Message:  fmt.Sprintf("このメールアドレスは既に登録されています: %s", email),
		Category: "auth",
		Action:   "別のメールアドレスで登録するか、ログインしてください。",
	}
}

// NewInvalidSelectionError は商品未選択で詳細画面に遷移した場合のエラーを生成する。
func NewInvalidSelectionError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidSelection,
		Message:  "商品が選択されていません。",
		Category: "validation",
		Action:   "カタログから商品を選択してください。",
	}
}

// NewProductNotFoundError は商品が見つからない場合のエラーを生成する。
func NewProductNotFoundError(productID string) *APIError {
	return &APIError{
		Code:     ErrCodeProductNotFound,
		Message:  fmt.Sprintf("指定された商品が見つかりません: %s", productID),
		Category: "validation",
		Action:   "商品IDを確認してください。",
	}
}

// NewNotApprovedError は未承認ユーザーが承認必須の操作を行った場合のエラーを生成する。
func NewNotApprovedError() *APIError {
	return &APIError{
		Code:     ErrCodeNotApproved,
		Message:  "アカウントは管理者の承認待ちです。",
		Category: "auth",
		Action:   "承認されるまでお待ちください。",
	}
}

// NewForbiddenError は管理者権限のない操作エラーを生成する。
func NewForbiddenError() *APIError {
	return &APIError{
		Code:     ErrCodeForbidden,
		Message:  "この操作には管理者権限が必要です。",
		Category: "admin",
		Action:   "管理者アカウントでログインしてください。",
	}
}

// NewUnauthorizedError は未ログイン状態での操作エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "ログインが必要です。",
		Category: "auth",
		Action:   "ログインしてください。",
	}
}

// NewInvalidQuantityError は不正な数量指定エラーを生成する。
func NewInvalidQuantityError(quantity int) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidQuantity,
		Message:  fmt.Sprintf("無効な数量です: %d", quantity),
		Category: "cart",
		Action:   "数量には1以上の整数を指定してください。",
	}
}

// NewInvalidTierError は未定義の価格区分エラーを生成する。
func NewInvalidTierError(tier string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidTier,
		Message:  fmt.Sprintf("無効な価格区分です: %s", tier),
		Category: "admin",
		Action:   "価格区分には STANDARD、WHOLESALE、VIP のいずれかを指定してください。",
	}
}

// NewInvalidLocationError は未定義のナビゲーション位置エラーを生成する。
func NewInvalidLocationError(location string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidLocation,
		Message:  fmt.Sprintf("無効な画面指定です: %s", location),
		Category: "validation",
		Action:   "定義済みの画面名を指定してください。",
	}
}

// NewUserNotFoundError は対象ユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError(userID string) *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  fmt.Sprintf("指定されたユーザーが見つかりません: %s", userID),
		Category: "admin",
		Action:   "ユーザーIDを確認してください。",
	}
}
