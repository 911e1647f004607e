package session

import (
	"context"

	"github.com/hitoshi/smartcatalog/internal/model"
)

// 管理者操作。画面はディレクトリを直接変更せず、必ずControllerを経由する。
// ログイン中ユーザー自身が変更対象だった場合は、次のガード評価で
// ディレクトリの最新状態がセッションに同期される。

// requireAdminLocked は管理者権限を検証する。呼び出し側がmuを保持していること。
func (c *Controller) requireAdminLocked() error {
	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsAdmin {
		return model.NewForbiddenError()
	}
	return nil
}

// ListUsers は全ユーザーを返す。管理者のみ実行できる。
func (c *Controller) ListUsers(ctx context.Context) ([]model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if err := c.requireAdminLocked(); err != nil {
		return nil, err
	}
	return c.directory.List(), nil
}

// ApproveUser は指定ユーザーの登録を承認する。管理者のみ実行できる。
func (c *Controller) ApproveUser(ctx context.Context, userID string) (*model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if err := c.requireAdminLocked(); err != nil {
		return nil, err
	}

	user, err := c.directory.Approve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.recorder != nil {
		c.recorder.RecordApproval()
	}
	return user, nil
}

// SetUserTier は指定ユーザーの価格区分を変更する。管理者のみ実行できる。
// 区分変更は以後のカート追加の価格解決にのみ影響し、追加済みの明細は書き換えない。
func (c *Controller) SetUserTier(ctx context.Context, userID string, tier model.PriceTier) (*model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if err := c.requireAdminLocked(); err != nil {
		return nil, err
	}
	return c.directory.SetPriceTier(ctx, userID, tier)
}
