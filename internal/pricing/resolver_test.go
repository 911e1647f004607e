package pricing

import (
	"testing"

	"github.com/hitoshi/smartcatalog/internal/model"
)

func testProduct() *model.Product {
	return &model.Product{
		ID:   "g1",
		Name: "Golden Sella Basmati",
		Prices: map[model.PriceTier]float64{
			model.TierStandard:  18.50,
			model.TierWholesale: 16.00,
			model.TierVIP:       14.50,
		},
	}
}

// TestPriceFor_AllTiers は各価格区分で設定どおりの価格が返ることを検証する。
func TestPriceFor_AllTiers(t *testing.T) {
	p := testProduct()

	tests := []struct {
		tier model.PriceTier
		want float64
	}{
		{model.TierStandard, 18.50},
		{model.TierWholesale, 16.00},
		{model.TierVIP, 14.50},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			if got := PriceFor(p, tt.tier); got != tt.want {
				t.Errorf("PriceFor(%s) = %v, want %v", tt.tier, got, tt.want)
			}
		})
	}
}

// TestPriceFor_Defensive は区分未指定・商品未指定で0が返ることを検証する。
func TestPriceFor_Defensive(t *testing.T) {
	if got := PriceFor(testProduct(), ""); got != 0 {
		t.Errorf("PriceFor(empty tier) = %v, want 0", got)
	}
	if got := PriceFor(nil, model.TierStandard); got != 0 {
		t.Errorf("PriceFor(nil product) = %v, want 0", got)
	}
	if got := PriceFor(testProduct(), model.PriceTier("GOLD")); got != 0 {
		t.Errorf("PriceFor(unknown tier) = %v, want 0", got)
	}
}
