// Package model はドメインモデルを定義する。
package model

// Product はカタログ上の商品を表す。
// カタログデータは静的で、プロセス起動後は不変として扱う。
type Product struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Prices         map[PriceTier]float64 `json:"prices"`
	MainCategory   string                `json:"mainCategory"`
	SubCategory    string                `json:"subCategory"`
	ImageURL       string                `json:"image"`
	Description    string                `json:"description"`
	PackagingTypes []string              `json:"packagingTypes"`
}

// Category は主カテゴリとその配下のサブカテゴリ一覧を表す。
type Category struct {
	Main string   `json:"main"`
	Subs []string `json:"subs"`
}
