package cart

import (
	"testing"

	"github.com/hitoshi/smartcatalog/internal/model"
)

func riceProduct() *model.Product {
	return &model.Product{
		ID:   "g1",
		Name: "Golden Sella Basmati",
		Prices: map[model.PriceTier]float64{
			model.TierStandard:  18.50,
			model.TierWholesale: 16.00,
			model.TierVIP:       14.50,
		},
		MainCategory:   "GROCERY",
		SubCategory:    "RICE",
		PackagingTypes: []string{"5kg Bag", "10kg Bag", "20kg Sack"},
	}
}

func oilProduct() *model.Product {
	return &model.Product{
		ID:   "g2",
		Name: "Pure Sunflower Oil",
		Prices: map[model.PriceTier]float64{
			model.TierStandard:  12.00,
			model.TierWholesale: 10.50,
			model.TierVIP:       9.00,
		},
		MainCategory:   "GROCERY",
		SubCategory:    "OIL & GHEE",
		PackagingTypes: []string{"1L Bottle", "5L Jerrycan"},
	}
}

// TestCart_Add_MergesSameProductAndPackaging は同一 (商品, 荷姿) の追加が
// 明細の複製ではなく数量加算になることを検証する。
func TestCart_Add_MergesSameProductAndPackaging(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 2, "5kg Bag", model.TierStandard)
	c.Add(p, 1, "5kg Bag", model.TierStandard)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", lines[0].Quantity)
	}
	if lines[0].UnitPrice != 18.50 {
		t.Errorf("unit price = %v, want 18.50", lines[0].UnitPrice)
	}
	if got := lines[0].LineTotal(); got != 55.50 {
		t.Errorf("line total = %v, want 55.50", got)
	}
	if c.TotalCount() != 3 {
		t.Errorf("total count = %d, want 3", c.TotalCount())
	}
}

// TestCart_Add_DifferentPackagingCreatesSeparateLines は荷姿が異なれば
// 別明細になることを検証する。
func TestCart_Add_DifferentPackagingCreatesSeparateLines(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 1, "5kg Bag", model.TierStandard)
	c.Add(p, 1, "10kg Bag", model.TierStandard)

	if c.Len() != 2 {
		t.Fatalf("lines = %d, want 2", c.Len())
	}
}

// TestCart_Add_SnapshotsPriceAtAddTime は単価が追加時点の価格区分で
// スナップショットされ、以後の区分変更で書き換わらないことを検証する。
func TestCart_Add_SnapshotsPriceAtAddTime(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 1, "5kg Bag", model.TierStandard)
	// 区分変更後の追加は新しい区分で解決されるが、既存明細は変わらない
	c.Add(p, 1, "10kg Bag", model.TierVIP)

	lines := c.Lines()
	if lines[0].UnitPrice != 18.50 {
		t.Errorf("first line price = %v, want 18.50", lines[0].UnitPrice)
	}
	if lines[1].UnitPrice != 14.50 {
		t.Errorf("second line price = %v, want 14.50", lines[1].UnitPrice)
	}
}

// TestCart_Add_NonPositiveQuantityIsNoop は0以下の数量指定が無視されることを検証する。
func TestCart_Add_NonPositiveQuantityIsNoop(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 0, "5kg Bag", model.TierStandard)
	c.Add(p, -3, "5kg Bag", model.TierStandard)

	if c.Len() != 0 {
		t.Errorf("lines = %d, want 0", c.Len())
	}
}

// TestCart_QuickAdd は数量1・先頭の荷姿で追加されることを検証する。
func TestCart_QuickAdd(t *testing.T) {
	c := New()
	p := riceProduct()

	c.QuickAdd(p, model.TierWholesale)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0].Packaging != "5kg Bag" {
		t.Errorf("packaging = %q, want %q", lines[0].Packaging, "5kg Bag")
	}
	if lines[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", lines[0].Quantity)
	}
	if lines[0].UnitPrice != 16.00 {
		t.Errorf("unit price = %v, want 16.00", lines[0].UnitPrice)
	}
}

// TestCart_UpdateQuantity_FloorAtZero は減算を繰り返しても数量が負にならず、
// 0になった明細が取り除かれることを検証する。
func TestCart_UpdateQuantity_FloorAtZero(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 2, "5kg Bag", model.TierStandard)

	c.UpdateQuantity("g1", "5kg Bag", -1)
	if c.TotalCount() != 1 {
		t.Errorf("total count = %d, want 1", c.TotalCount())
	}

	c.UpdateQuantity("g1", "5kg Bag", -1)
	if c.Len() != 0 {
		t.Errorf("lines = %d, want 0 (zero-quantity line must be removed)", c.Len())
	}

	// 明細が消えた後の減算は何も起こさない
	c.UpdateQuantity("g1", "5kg Bag", -1)
	if c.Len() != 0 || c.TotalCount() != 0 {
		t.Errorf("lines = %d, count = %d, want 0, 0", c.Len(), c.TotalCount())
	}
}

// TestCart_UpdateQuantity_WildcardPackaging は空文字列の荷姿指定が
// その商品の全荷姿にマッチすることを検証する。
func TestCart_UpdateQuantity_WildcardPackaging(t *testing.T) {
	c := New()
	p := riceProduct()

	c.Add(p, 1, "5kg Bag", model.TierStandard)
	c.Add(p, 1, "10kg Bag", model.TierStandard)

	c.UpdateQuantity("g1", "", 2)

	for _, line := range c.Lines() {
		if line.Quantity != 3 {
			t.Errorf("line %q quantity = %d, want 3", line.Packaging, line.Quantity)
		}
	}
}

// TestCart_UpdateQuantity_OnlyMatchingProduct は他商品の明細に影響しないことを検証する。
func TestCart_UpdateQuantity_OnlyMatchingProduct(t *testing.T) {
	c := New()
	c.Add(riceProduct(), 1, "5kg Bag", model.TierStandard)
	c.Add(oilProduct(), 1, "1L Bottle", model.TierStandard)

	c.UpdateQuantity("g1", "5kg Bag", 4)

	lines := c.Lines()
	if lines[0].Quantity != 5 {
		t.Errorf("g1 quantity = %d, want 5", lines[0].Quantity)
	}
	if lines[1].Quantity != 1 {
		t.Errorf("g2 quantity = %d, want 1", lines[1].Quantity)
	}
}

// TestCart_UpdateQuantityFromGrid は一覧画面からの数量変更の分岐を検証する。
func TestCart_UpdateQuantityFromGrid(t *testing.T) {
	t.Run("明細がない場合は正のdeltaでQuickAdd", func(t *testing.T) {
		c := New()
		c.UpdateQuantityFromGrid(riceProduct(), 1, model.TierStandard)

		lines := c.Lines()
		if len(lines) != 1 {
			t.Fatalf("lines = %d, want 1", len(lines))
		}
		if lines[0].Packaging != "5kg Bag" || lines[0].Quantity != 1 {
			t.Errorf("line = %+v, want quick-added 5kg Bag x1", lines[0])
		}
	})

	t.Run("明細がない場合の負のdeltaは無視", func(t *testing.T) {
		c := New()
		c.UpdateQuantityFromGrid(riceProduct(), -1, model.TierStandard)

		if c.Len() != 0 {
			t.Errorf("lines = %d, want 0", c.Len())
		}
	})

	t.Run("既存明細には荷姿を問わず差分を適用", func(t *testing.T) {
		c := New()
		p := riceProduct()
		c.Add(p, 1, "20kg Sack", model.TierStandard)

		c.UpdateQuantityFromGrid(p, 1, model.TierStandard)

		lines := c.Lines()
		if len(lines) != 1 {
			t.Fatalf("lines = %d, want 1", len(lines))
		}
		if lines[0].Packaging != "20kg Sack" || lines[0].Quantity != 2 {
			t.Errorf("line = %+v, want 20kg Sack x2", lines[0])
		}
	})
}

// TestCart_Remove は (商品ID, 荷姿) の完全一致で明細が削除されることを検証する。
func TestCart_Remove(t *testing.T) {
	c := New()
	p := riceProduct()
	c.Add(p, 1, "5kg Bag", model.TierStandard)
	c.Add(p, 1, "10kg Bag", model.TierStandard)

	c.Remove("g1", "5kg Bag")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0].Packaging != "10kg Bag" {
		t.Errorf("remaining packaging = %q, want %q", lines[0].Packaging, "10kg Bag")
	}

	// 一致しない削除は何も起こさない
	c.Remove("g1", "5kg Bag")
	if c.Len() != 1 {
		t.Errorf("lines = %d, want 1", c.Len())
	}
}

// TestCart_ClearAndTotals はクリアと集計値の再計算を検証する。
func TestCart_ClearAndTotals(t *testing.T) {
	c := New()
	c.Add(riceProduct(), 2, "5kg Bag", model.TierStandard)
	c.Add(oilProduct(), 3, "1L Bottle", model.TierStandard)

	if c.TotalCount() != 5 {
		t.Errorf("total count = %d, want 5", c.TotalCount())
	}
	want := 2*18.50 + 3*12.00
	if got := c.TotalAmount(); got != want {
		t.Errorf("total amount = %v, want %v", got, want)
	}

	c.Clear()
	if c.TotalCount() != 0 || c.Len() != 0 {
		t.Errorf("after clear: count = %d, lines = %d, want 0, 0", c.TotalCount(), c.Len())
	}
}

// TestCart_LinesReturnsCopy は取得した明細への変更がカートに影響しないことを検証する。
func TestCart_LinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(riceProduct(), 1, "5kg Bag", model.TierStandard)

	lines := c.Lines()
	lines[0].Quantity = 99

	if c.TotalCount() != 1 {
		t.Errorf("total count = %d, want 1", c.TotalCount())
	}
}
