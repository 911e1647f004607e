package session

import (
	"context"
	"math"
	"testing"

	"github.com/hitoshi/smartcatalog/internal/kvs"
	"github.com/hitoshi/smartcatalog/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertAPIErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	apiErr, ok := err.(*model.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *model.APIError", err)
	}
	if apiErr.Code != code {
		t.Errorf("code = %q, want %q", apiErr.Code, code)
	}
}

// TestController_AddToCart_MergesSameSelection は同一の (商品, 荷姿) への
// 追加が1明細に統合されることを検証する
// （シナリオ: g1を5kg Bagで2個+1個 → 数量3、単価18.50、明細合計55.50）。
func TestController_AddToCart_MergesSameSelection(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	if err := ctrl.AddToCart(ctx, "g1", 2, "5kg Bag"); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}
	if err := ctrl.AddToCart(ctx, "g1", 1, "5kg Bag"); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	snap := ctrl.Snapshot(ctx)
	if len(snap.CartLines) != 1 {
		t.Fatalf("lines = %d, want 1", len(snap.CartLines))
	}
	line := snap.CartLines[0]
	if line.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", line.Quantity)
	}
	if !almostEqual(line.UnitPrice, 18.50) {
		t.Errorf("unit price = %v, want 18.50", line.UnitPrice)
	}
	if !almostEqual(line.LineTotal(), 55.50) {
		t.Errorf("line total = %v, want 55.50", line.LineTotal())
	}
	if snap.CartCount != 3 {
		t.Errorf("cart count = %d, want 3", snap.CartCount)
	}
}

// TestController_AddToCart_PriceFollowsUserTier は単価の解決に
// ログイン中ユーザーの価格区分が使われることを検証する。
func TestController_AddToCart_PriceFollowsUserTier(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "vip@wholesale.com")

	if err := ctrl.AddToCart(ctx, "g1", 1, "5kg Bag"); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	snap := ctrl.Snapshot(ctx)
	if !almostEqual(snap.CartLines[0].UnitPrice, 14.50) {
		t.Errorf("unit price = %v, want VIP price 14.50", snap.CartLines[0].UnitPrice)
	}
}

// TestController_AddToCart_SnapshotSurvivesTierChange は区分変更後も
// 追加済み明細の単価が変わらず、以後の追加のみ新区分で解決されることを検証する。
func TestController_AddToCart_SnapshotSurvivesTierChange(t *testing.T) {
	ctrl, dir := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	if err := ctrl.AddToCart(ctx, "g1", 1, "5kg Bag"); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}
	if _, err := dir.SetPriceTier(ctx, "u1", model.TierVIP); err != nil {
		t.Fatalf("SetPriceTier returned error: %v", err)
	}
	if err := ctrl.AddToCart(ctx, "g2", 1, "1L Bottle"); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	prices := map[string]float64{}
	for _, line := range ctrl.Snapshot(ctx).CartLines {
		prices[line.ProductID] = line.UnitPrice
	}
	if !almostEqual(prices["g1"], 18.50) {
		t.Errorf("g1 unit price = %v, want snapshot 18.50", prices["g1"])
	}
	if !almostEqual(prices["g2"], 9.00) {
		t.Errorf("g2 unit price = %v, want VIP price 9.00", prices["g2"])
	}
}

// TestController_AddToCart_Errors はカート追加の各エラー経路を検証する。
func TestController_AddToCart_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("未ログイン", func(t *testing.T) {
		ctrl, _ := newTestController(t, kvs.NewMemoryStore())
		err := ctrl.AddToCart(ctx, "g1", 1, "5kg Bag")
		assertAPIErrorCode(t, err, model.ErrCodeUnauthorized)
	})

	t.Run("未承認ユーザー", func(t *testing.T) {
		ctrl, _ := newTestController(t, kvs.NewMemoryStore())
		if err := ctrl.Register(ctx, "New User", "new@x.com"); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		err := ctrl.AddToCart(ctx, "g1", 1, "5kg Bag")
		assertAPIErrorCode(t, err, model.ErrCodeNotApproved)
	})

	t.Run("数量0以下", func(t *testing.T) {
		ctrl, _ := newTestController(t, kvs.NewMemoryStore())
		mustLogin(t, ctrl, "admin@demo.com")
		assertAPIErrorCode(t, ctrl.AddToCart(ctx, "g1", 0, "5kg Bag"), model.ErrCodeInvalidQuantity)
		assertAPIErrorCode(t, ctrl.AddToCart(ctx, "g1", -2, "5kg Bag"), model.ErrCodeInvalidQuantity)
		if got := ctrl.CartCount(ctx); got != 0 {
			t.Errorf("cart count = %d, want 0 after rejected adds", got)
		}
	})

	t.Run("存在しない商品", func(t *testing.T) {
		ctrl, _ := newTestController(t, kvs.NewMemoryStore())
		mustLogin(t, ctrl, "admin@demo.com")
		assertAPIErrorCode(t, ctrl.AddToCart(ctx, "zzz", 1, "5kg Bag"), model.ErrCodeProductNotFound)
	})
}

// TestController_QuickAdd は数量1・先頭の荷姿での追加を検証する。
func TestController_QuickAdd(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	if err := ctrl.QuickAdd(ctx, "g1"); err != nil {
		t.Fatalf("QuickAdd returned error: %v", err)
	}

	snap := ctrl.Snapshot(ctx)
	if len(snap.CartLines) != 1 {
		t.Fatalf("lines = %d, want 1", len(snap.CartLines))
	}
	line := snap.CartLines[0]
	if line.Quantity != 1 || line.Packaging != "5kg Bag" {
		t.Errorf("line = %+v, want quantity 1 with first packaging", line)
	}
}

// TestController_UpdateCartQuantity_FloorsAtZero は数量0で明細が
// 取り除かれることを検証する。
func TestController_UpdateCartQuantity_FloorsAtZero(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	_ = ctrl.AddToCart(ctx, "g1", 2, "5kg Bag")
	if err := ctrl.UpdateCartQuantity(ctx, "g1", "5kg Bag", -5); err != nil {
		t.Fatalf("UpdateCartQuantity returned error: %v", err)
	}

	if got := ctrl.CartCount(ctx); got != 0 {
		t.Errorf("cart count = %d, want 0", got)
	}
	if lines := ctrl.Snapshot(ctx).CartLines; len(lines) != 0 {
		t.Errorf("lines = %d, want 0 (zero-quantity line must be dropped)", len(lines))
	}
}

// TestController_UpdateCartQuantityFromGrid は一覧画面からの数量変更を検証する。
func TestController_UpdateCartQuantityFromGrid(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	// 明細がない状態で正のdeltaはQuickAdd相当
	if err := ctrl.UpdateCartQuantityFromGrid(ctx, "g1", 1); err != nil {
		t.Fatalf("UpdateCartQuantityFromGrid returned error: %v", err)
	}
	if got := ctrl.CartCount(ctx); got != 1 {
		t.Fatalf("cart count = %d, want 1", got)
	}

	// 既存明細には差分適用
	if err := ctrl.UpdateCartQuantityFromGrid(ctx, "g1", 2); err != nil {
		t.Fatalf("UpdateCartQuantityFromGrid returned error: %v", err)
	}
	if got := ctrl.CartCount(ctx); got != 3 {
		t.Errorf("cart count = %d, want 3", got)
	}

	// 明細がない状態で負のdeltaは何もしない
	if err := ctrl.UpdateCartQuantityFromGrid(ctx, "g2", -1); err != nil {
		t.Fatalf("UpdateCartQuantityFromGrid returned error: %v", err)
	}
	if got := ctrl.CartCount(ctx); got != 3 {
		t.Errorf("cart count = %d, want 3 (negative delta on absent line is a no-op)", got)
	}
}

// TestController_RemoveFromCart は完全一致する明細のみ削除されることを検証する。
func TestController_RemoveFromCart(t *testing.T) {
	ctrl, _ := newTestController(t, kvs.NewMemoryStore())
	ctx := context.Background()
	mustLogin(t, ctrl, "admin@demo.com")

	_ = ctrl.AddToCart(ctx, "g1", 1, "5kg Bag")
	_ = ctrl.AddToCart(ctx, "g1", 1, "10kg Bag")

	if err := ctrl.RemoveFromCart(ctx, "g1", "5kg Bag"); err != nil {
		t.Fatalf("RemoveFromCart returned error: %v", err)
	}

	lines := ctrl.Snapshot(ctx).CartLines
	if len(lines) != 1 || lines[0].Packaging != "10kg Bag" {
		t.Errorf("lines = %+v, want only the 10kg Bag line", lines)
	}
}
