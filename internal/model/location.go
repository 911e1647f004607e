// Package model はドメインモデルを定義する。
package model

// Location はアプリケーションのナビゲーション位置（表示中の画面）を表す。
type Location string

const (
	// LocationLogin はログイン画面。未認証時は常にここに強制される。
	LocationLogin Location = "login"
	// LocationPending は承認待ち画面。未承認ユーザーは常にここに強制される。
	LocationPending Location = "pending"
	// LocationCatalog は商品一覧画面。
	LocationCatalog Location = "catalog"
	// LocationCategories はカテゴリ一覧画面。
	LocationCategories Location = "categories"
	// LocationSearch は検索画面。
	LocationSearch Location = "search"
	// LocationCart はカート画面。
	LocationCart Location = "cart"
	// LocationOrderSuccess は注文完了画面。カートは継続ボタンまで保持される。
	LocationOrderSuccess Location = "order-success"
	// LocationAccount はアカウント画面。
	LocationAccount Location = "account"
	// LocationAdmin は管理者画面。IsAdminのユーザーのみ遷移できる。
	LocationAdmin Location = "admin"
	// LocationDetails は商品詳細画面。選択中の商品を表示する。
	LocationDetails Location = "details"
)

// Valid はナビゲーション位置が定義済みの値かどうかを返す。
func (l Location) Valid() bool {
	switch l {
	case LocationLogin, LocationPending, LocationCatalog, LocationCategories,
		LocationSearch, LocationCart, LocationOrderSuccess, LocationAccount,
		LocationAdmin, LocationDetails:
		return true
	}
	return false
}
