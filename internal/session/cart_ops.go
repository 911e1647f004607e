package session

import (
	"context"

	"github.com/hitoshi/smartcatalog/internal/model"
)

// カート操作。単価の解決にはログイン中ユーザーの価格区分を使うため、
// カートエンジンの呼び出しはすべてControllerを経由する。

// AddToCart は商品をカートに追加する。
// 単価は現時点のログイン中ユーザーの価格区分で解決され、明細にスナップショットされる。
// quantityが0以下の場合はINVALID_QUANTITYエラーを返し、カートは変化しない。
func (c *Controller) AddToCart(ctx context.Context, productID string, quantity int, packaging string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}
	if quantity <= 0 {
		return model.NewInvalidQuantityError(quantity)
	}

	product := c.catalog.FindByID(productID)
	if product == nil {
		return model.NewProductNotFoundError(productID)
	}

	c.cart.Add(product, quantity, packaging, c.user.PriceTier)
	if c.recorder != nil {
		c.recorder.RecordCartAdd()
	}
	return nil
}

// QuickAdd は商品を数量1、先頭の荷姿でカートに追加する。
func (c *Controller) QuickAdd(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	product := c.catalog.FindByID(productID)
	if product == nil {
		return model.NewProductNotFoundError(productID)
	}

	c.cart.QuickAdd(product, c.user.PriceTier)
	if c.recorder != nil {
		c.recorder.RecordCartAdd()
	}
	return nil
}

// UpdateCartQuantity は指定明細に数量差分を適用する。
// packagingが空文字列の場合はその商品の全荷姿にマッチする。
// 数量が0になった明細は取り除かれる。
func (c *Controller) UpdateCartQuantity(ctx context.Context, productID, packaging string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	c.cart.UpdateQuantity(productID, packaging, delta)
	return nil
}

// UpdateCartQuantityFromGrid は荷姿選択のない一覧画面からの数量変更を処理する。
// 既存明細があれば差分を適用し、なければ正のdeltaでQuickAddする。
func (c *Controller) UpdateCartQuantityFromGrid(ctx context.Context, productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	product := c.catalog.FindByID(productID)
	if product == nil {
		return model.NewProductNotFoundError(productID)
	}

	c.cart.UpdateQuantityFromGrid(product, delta, c.user.PriceTier)
	return nil
}

// RemoveFromCart は (商品ID, 荷姿) に完全一致する明細を削除する。
// 一致しない場合は何もしない。
func (c *Controller) RemoveFromCart(ctx context.Context, productID, packaging string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	c.cart.Remove(productID, packaging)
	return nil
}

// CartCount は全明細の数量合計を返す。未ログイン時は0を返す。
func (c *Controller) CartCount(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	return c.cart.TotalCount()
}
