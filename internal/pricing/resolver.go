// Package pricing は商品と価格区分の組から単価を解決する。
package pricing

import "github.com/hitoshi/smartcatalog/internal/model"

// PriceFor は商品の指定価格区分における単価を返す。純粋関数。
// 区分が未指定または商品に定義されていない場合は0を返す。
// 価格依存の画面に到達する時点で認証済みユーザーの区分は確定している。
func PriceFor(product *model.Product, tier model.PriceTier) float64 {
	if product == nil || tier == "" {
		return 0
	}
	return product.Prices[tier]
}
