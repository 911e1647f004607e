// Package view はセッション状態から画面表示モデルを導出するビュールーターを提供する。
//
// Resolveは純粋関数であり、状態を一切変更しない。どの画面にどのパラメータを
// 渡すかの決定はすべてここに集約され、画面側（HTTPハンドラ）は受け取った
// ViewModelをそのまま返すだけでよい。
package view

import (
	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/session"
)

// Catalog はビュー解決が必要とする商品カタログのインターフェース。
type Catalog interface {
	ListAll() []model.Product
	ListCategories() []model.Category
	ListByCategory(main, sub string) []model.Product
	Search(query string) []model.Product
}

// Directory はビュー解決が必要とするユーザーディレクトリのインターフェース。
type Directory interface {
	List() []model.User
}

// CatalogView はcatalog画面の表示モデル。
type CatalogView struct {
	Products     []model.Product `json:"products"`
	MainCategory string          `json:"mainCategory"`
	SubCategory  string          `json:"subCategory"`
}

// SearchView はsearch画面の表示モデル。
type SearchView struct {
	Query   string          `json:"query"`
	Results []model.Product `json:"results"`
}

// DetailsView はdetails画面の表示モデル。
// Productがnilの場合は商品未選択のフォールバック表示を意味する。
type DetailsView struct {
	Product *model.Product `json:"product"`
}

// CartView はcart画面およびorder-success画面の表示モデル。
type CartView struct {
	Lines []model.CartLine `json:"lines"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

// AdminView はadmin画面の表示モデル。
type AdminView struct {
	Users []model.User `json:"users"`
}

// ViewModel はアクティブな画面とそのパラメータを表す。
// 画面に対応するフィールドのみが設定され、他はnilになる。
// CartCountは全画面共通のバッジ表示のため常に設定される。
type ViewModel struct {
	Screen    model.Location `json:"screen"`
	User      *model.User    `json:"user,omitempty"`
	CartCount int            `json:"cartCount"`

	Catalog      *CatalogView     `json:"catalog,omitempty"`
	Categories   []model.Category `json:"categories,omitempty"`
	Search       *SearchView      `json:"search,omitempty"`
	Details      *DetailsView     `json:"details,omitempty"`
	Cart         *CartView        `json:"cart,omitempty"`
	OrderSuccess *CartView        `json:"orderSuccess,omitempty"`
	Admin        *AdminView       `json:"admin,omitempty"`
}

// Resolve はセッションスナップショットから画面表示モデルを導出する。
// スナップショットの位置は承認ゲート適用済みであることを前提とし、
// ここでは認可判断を行わない。
func Resolve(snap session.Snapshot, catalog Catalog, directory Directory) ViewModel {
	vm := ViewModel{
		Screen:    snap.Location,
		User:      snap.User,
		CartCount: snap.CartCount,
	}

	switch snap.Location {
	case model.LocationCatalog:
		vm.Catalog = &CatalogView{
			Products:     catalog.ListByCategory(snap.MainCategory, snap.SubCategory),
			MainCategory: snap.MainCategory,
			SubCategory:  snap.SubCategory,
		}
	case model.LocationCategories:
		vm.Categories = catalog.ListCategories()
	case model.LocationSearch:
		vm.Search = &SearchView{
			Query:   snap.SearchQuery,
			Results: catalog.Search(snap.SearchQuery),
		}
	case model.LocationDetails:
		// 商品未選択はエラーではなくフォールバック表示
		vm.Details = &DetailsView{Product: snap.SelectedProduct}
	case model.LocationCart:
		vm.Cart = &CartView{
			Lines: snap.CartLines,
			Count: snap.CartCount,
			Total: snap.CartTotal,
		}
	case model.LocationOrderSuccess:
		vm.OrderSuccess = &CartView{
			Lines: snap.CartLines,
			Count: snap.CartCount,
			Total: snap.CartTotal,
		}
	case model.LocationAdmin:
		vm.Admin = &AdminView{Users: directory.List()}
	}

	return vm
}
