// Package model はドメインモデルを定義する。
package model

// CartLine はカート内の1明細を表す。
// (商品ID, 荷姿) の組はカート内で一意であり、同じ組への追加は数量の加算になる。
// UnitPriceは追加時点のユーザー価格区分で解決した単価のスナップショットで、
// 以後の区分変更では書き換わらない。
type CartLine struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	MainCategory string  `json:"mainCategory"`
	SubCategory  string  `json:"subCategory"`
	ImageURL     string  `json:"image"`
	Packaging    string  `json:"selectedPackaging"`
	UnitPrice    float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// LineTotal は明細の小計（単価 × 数量）を返す。
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
