// Package cart はセッション内カートのドメインロジックを提供する。
//
// 不変条件:
//   - (商品ID, 荷姿) の組はカート内で一意。同じ組への追加は数量の加算になる。
//   - 数量が0以下の明細は存在しない。0になった明細はその場で取り除く。
//   - 明細の単価は追加時点で解決したスナップショットで、以後変化しない。
package cart

import (
	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/pricing"
)

// Cart はセッションにスコープされたカート。
// ログインまたはチェックアウト完了後に空で作られ、ログアウトで破棄される。
type Cart struct {
	lines []model.CartLine
}

// New は空のカートを生成する。
func New() *Cart {
	return &Cart{}
}

// Add は商品をカートに追加する。
// 単価は追加時点の価格区分で解決してスナップショットする。
// 同じ (商品ID, 荷姿) の明細が既にあれば数量を加算し、なければ末尾に追加する。
// quantityが0以下の場合は何もしない（数量0以下の明細を作らない不変条件を優先）。
func (c *Cart) Add(product *model.Product, quantity int, packaging string, tier model.PriceTier) {
	if product == nil || quantity <= 0 {
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID && c.lines[i].Packaging == packaging {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, model.CartLine{
		ProductID:    product.ID,
		Name:         product.Name,
		MainCategory: product.MainCategory,
		SubCategory:  product.SubCategory,
		ImageURL:     product.ImageURL,
		Packaging:    packaging,
		UnitPrice:    pricing.PriceFor(product, tier),
		Quantity:     quantity,
	})
}

// QuickAdd は商品を数量1、先頭の荷姿で追加する。
// 一覧・グリッド画面のワンタップ追加に使用する。
func (c *Cart) QuickAdd(product *model.Product, tier model.PriceTier) {
	if product == nil || len(product.PackagingTypes) == 0 {
		return
	}
	c.Add(product, 1, product.PackagingTypes[0], tier)
}

// UpdateQuantity は指定商品の明細に数量差分を適用する。
// packagingが空文字列の場合はその商品の全荷姿にマッチするワイルドカードとして扱う。
// 適用後の数量は0を下回らず、0になった明細は取り除く。
func (c *Cart) UpdateQuantity(productID, packaging string, delta int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID == productID && (packaging == "" || line.Packaging == packaging) {
			line.Quantity += delta
			if line.Quantity < 0 {
				line.Quantity = 0
			}
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// UpdateQuantityFromGrid は荷姿選択のない一覧画面からの数量変更を処理する。
// 商品の明細が既にあれば（荷姿を問わず）その明細に差分を適用し、
// 明細がなくdeltaが正の場合はQuickAddを行う。
func (c *Cart) UpdateQuantityFromGrid(product *model.Product, delta int, tier model.PriceTier) {
	if product == nil {
		return
	}

	for _, line := range c.lines {
		if line.ProductID == product.ID {
			c.UpdateQuantity(product.ID, line.Packaging, delta)
			return
		}
	}

	if delta > 0 {
		c.QuickAdd(product, tier)
	}
}

// Remove は (商品ID, 荷姿) に一致する明細を削除する。一致しない場合は何もしない。
func (c *Cart) Remove(productID, packaging string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID == productID && line.Packaging == packaging {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

// Clear はカートを空にする。
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalCount は全明細の数量合計を返す。
// 増分管理はせず、読み取りごとに明細から再計算する。
func (c *Cart) TotalCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalAmount は全明細の小計合計を返す。
func (c *Cart) TotalAmount() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}

// Lines は明細のコピーを返す。呼び出し側の変更はカートに影響しない。
func (c *Cart) Lines() []model.CartLine {
	lines := make([]model.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len は明細数を返す。
func (c *Cart) Len() int {
	return len(c.lines)
}
