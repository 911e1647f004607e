// Package session はアプリケーションのセッション制御を提供する。
//
// Controllerはログイン中ユーザー、ナビゲーション位置、一時的な選択状態
// （カテゴリフィルタ・選択中商品・検索文字列）とカートを所有し、
// すべての状態遷移をここで定義された操作に集約する。
//
// 承認ゲート: 未承認ユーザーのナビゲーション位置は、要求された遷移に
// かかわらず常にpendingに強制される。このチェックはログイン時だけでなく
// 各操作の先頭でガードとして再評価されるため、管理者による承認が
// ディレクトリ側で行われれば次の評価時点から反映される。
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/hitoshi/smartcatalog/internal/cart"
	"github.com/hitoshi/smartcatalog/internal/kvs"
	"github.com/hitoshi/smartcatalog/internal/model"
)

// categoryAll はカテゴリフィルタの「絞り込みなし」を表す。
const categoryAll = "All"

// Directory はセッション制御が必要とするユーザーディレクトリのインターフェース。
type Directory interface {
	// FindByEmail はメールアドレスでユーザーを検索する。大文字小文字は区別しない。
	FindByEmail(email string) *model.User
	// FindByID はIDでユーザーを検索する。見つからない場合はnilを返す。
	FindByID(id string) *model.User
	// Register は新規ユーザーを登録する。重複時はDUPLICATE_EMAILエラーを返す。
	Register(ctx context.Context, name, email string) (*model.User, error)
	// List は全ユーザーを返す。
	List() []model.User
	// Approve は指定ユーザーを承認済みにする。
	Approve(ctx context.Context, id string) (*model.User, error)
	// SetPriceTier は指定ユーザーの価格区分を変更する。
	SetPriceTier(ctx context.Context, id string, tier model.PriceTier) (*model.User, error)
}

// Catalog はセッション制御が必要とする商品カタログのインターフェース。
type Catalog interface {
	// FindByID は指定IDの商品を返す。見つからない場合はnilを返す。
	FindByID(id string) *model.Product
}

// Recorder はセッション操作のメトリクス記録インターフェース。
type Recorder interface {
	RecordLogin()
	RecordLoginFailure()
	RecordRegistration()
	RecordApproval()
	RecordCartAdd()
	RecordCheckout()
}

// Snapshot はビュールーターに渡すセッション状態のスナップショット。
type Snapshot struct {
	User            *model.User
	Location        model.Location
	MainCategory    string
	SubCategory     string
	SelectedProduct *model.Product
	SearchQuery     string
	CartLines       []model.CartLine
	CartCount       int
	CartTotal       float64
}

// Controller はセッション状態の唯一の所有者。
// 操作は1件ずつ完了まで処理される（HTTPのゴルーチンモデル下ではmuで直列化する）。
type Controller struct {
	mu        sync.Mutex
	directory Directory
	catalog   Catalog
	store     kvs.Store
	recorder  Recorder

	user            *model.User
	location        model.Location
	mainCategory    string
	subCategory     string
	selectedProduct string
	searchQuery     string
	cart            *cart.Cart
}

// NewController はControllerの新しいインスタンスを生成する。
// recorderはnilでもよい。初期状態は未ログイン（login画面）。
func NewController(dir Directory, cat Catalog, store kvs.Store, recorder Recorder) *Controller {
	return &Controller{
		directory:    dir,
		catalog:      cat,
		store:        store,
		recorder:     recorder,
		location:     model.LocationLogin,
		mainCategory: categoryAll,
		subCategory:  categoryAll,
		cart:         cart.New(),
	}
}

// Load は外部ストアのcurrent-userエントリからセッションを復元する。起動時に1回呼び出す。
// 復元時はusers-listの同一メールアドレスのエントリがスナップショットより優先される。
// ディレクトリ側の変更（管理者承認など）を古いスナップショットで覆い隠さないため。
func (c *Controller) Load(ctx context.Context) error {
	data, err := c.store.Get(ctx, kvs.KeyCurrentUser)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var persisted model.User
	if err := json.Unmarshal(data, &persisted); err != nil {
		slog.Warn("persisted current-user is corrupted, starting logged out",
			slog.String("error", err.Error()),
		)
		return nil
	}

	user := persisted
	if live := c.directory.FindByEmail(persisted.Email); live != nil {
		user = *live
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = &user
	if user.IsApproved {
		c.location = model.LocationCatalog
	} else {
		c.location = model.LocationPending
	}
	c.persistUserLocked(ctx)
	return nil
}

// guardLocked は全操作の先頭で実行されるナビゲーションガード。
// ログイン中ユーザーをディレクトリの最新状態に同期した上で、
// 未認証ならlogin、未承認ならpendingに位置を強制する。
// 呼び出し側がmuを保持していること。
func (c *Controller) guardLocked(ctx context.Context) {
	if c.user == nil {
		c.location = model.LocationLogin
		return
	}

	if fresh := c.directory.FindByID(c.user.ID); fresh != nil && *fresh != *c.user {
		c.user = fresh
		c.persistUserLocked(ctx)
	}

	if !c.user.IsApproved && c.location != model.LocationPending {
		c.location = model.LocationPending
	}
}

// Login はメールアドレスでログインする。
// アカウントが見つからない場合はACCOUNT_NOT_FOUNDエラーを返し、状態を変更しない。
// 成功時は承認状態に応じてcatalogまたはpendingに遷移し、カートを空で作り直す。
func (c *Controller) Login(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user := c.directory.FindByEmail(email)
	if user == nil {
		if c.recorder != nil {
			c.recorder.RecordLoginFailure()
		}
		return model.NewAccountNotFoundError(email)
	}

	c.user = user
	c.resetTransientsLocked()
	c.cart.Clear()
	if user.IsApproved {
		c.location = model.LocationCatalog
	} else {
		c.location = model.LocationPending
	}
	c.persistUserLocked(ctx)

	if c.recorder != nil {
		c.recorder.RecordLogin()
	}
	return nil
}

// Register は新規ユーザーを登録し、そのユーザーでログインする。
// 重複メールアドレスの場合はDUPLICATE_EMAILエラーを返し、状態を変更しない。
// 成功時は必ずpendingに遷移する（新規ユーザーは未承認のため）。
func (c *Controller) Register(ctx context.Context, name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.directory.Register(ctx, name, email)
	if err != nil {
		return err
	}

	c.user = user
	c.resetTransientsLocked()
	c.cart.Clear()
	c.location = model.LocationPending
	c.persistUserLocked(ctx)

	if c.recorder != nil {
		c.recorder.RecordRegistration()
	}
	return nil
}

// Logout はログイン中ユーザーを解除し、カートを破棄してloginに遷移する。
// 外部ストアのcurrent-userエントリは削除する。
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.cart.Clear()
	c.resetTransientsLocked()
	c.location = model.LocationLogin

	if err := c.store.Delete(ctx, kvs.KeyCurrentUser); err != nil {
		slog.Error("failed to delete current-user", slog.String("error", err.Error()))
	}
}

// Navigate は指定画面への遷移を要求する。
// 未認証時はUNAUTHORIZED、未定義の画面はINVALID_LOCATIONエラーを返す。
// 未承認ユーザーの遷移要求は承認ゲートにより無視され、pendingに留まる（エラーではない）。
// admin画面はIsAdminのユーザーのみ遷移でき、それ以外はFORBIDDENエラーを返す。
// catalogへの遷移は選択中商品をクリアする。
func (c *Controller) Navigate(ctx context.Context, location model.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if !location.Valid() {
		return model.NewInvalidLocationError(string(location))
	}
	if c.user == nil {
		if location == model.LocationLogin {
			return nil
		}
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		// 承認ゲート: pending/login以外への遷移要求は無視する
		if location == model.LocationPending || location == model.LocationLogin {
			c.location = location
		}
		return nil
	}
	if location == model.LocationAdmin && !c.user.IsAdmin {
		return model.NewForbiddenError()
	}
	if location == model.LocationCatalog {
		c.selectedProduct = ""
	}

	c.location = location
	return nil
}

// NavigateToProduct は商品を選択して詳細画面に遷移する。
// 商品が存在しない場合はPRODUCT_NOT_FOUNDエラーを返し、状態を変更しない。
func (c *Controller) NavigateToProduct(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}
	if c.catalog.FindByID(productID) == nil {
		return model.NewProductNotFoundError(productID)
	}

	c.selectedProduct = productID
	c.location = model.LocationDetails
	return nil
}

// SelectCategory はカテゴリ画面からの選択を処理する。
// 主・サブカテゴリのフィルタを設定し、catalogに遷移する。
func (c *Controller) SelectCategory(ctx context.Context, main, sub string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	if main == "" {
		main = categoryAll
	}
	if sub == "" {
		sub = categoryAll
	}
	c.mainCategory = main
	c.subCategory = sub
	c.selectedProduct = ""
	c.location = model.LocationCatalog
	return nil
}

// SetSearchQuery は検索文字列を設定する。画面は遷移しない。
func (c *Controller) SetSearchQuery(ctx context.Context, query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	c.searchQuery = query
	return nil
}

// Checkout はカート画面から注文完了画面に遷移する。
// 完了画面でも内容を表示できるよう、カートはこの時点では消去しない。
func (c *Controller) Checkout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	c.location = model.LocationOrderSuccess
	if c.recorder != nil {
		c.recorder.RecordCheckout()
	}
	return nil
}

// ContinueShopping は注文完了画面からカートを消去してcatalogに戻る。
func (c *Controller) ContinueShopping(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return model.NewUnauthorizedError()
	}
	if !c.user.IsApproved {
		return model.NewNotApprovedError()
	}

	c.cart.Clear()
	c.selectedProduct = ""
	c.location = model.LocationCatalog
	return nil
}

// resetTransientsLocked は一時的な選択状態を初期値に戻す。
// 呼び出し側がmuを保持していること。
func (c *Controller) resetTransientsLocked() {
	c.mainCategory = categoryAll
	c.subCategory = categoryAll
	c.selectedProduct = ""
	c.searchQuery = ""
}

// persistUserLocked はログイン中ユーザーをcurrent-userエントリに書き込む。
// 呼び出し側がmuを保持していること。
// 書き込み失敗はログに記録するのみで、操作自体は成立させる。
func (c *Controller) persistUserLocked(ctx context.Context) {
	if c.user == nil {
		return
	}
	data, err := json.Marshal(c.user)
	if err != nil {
		slog.Error("failed to marshal current-user", slog.String("error", err.Error()))
		return
	}
	if err := c.store.Set(ctx, kvs.KeyCurrentUser, data); err != nil {
		slog.Error("failed to persist current-user", slog.String("error", err.Error()))
	}
}

// Snapshot はビュールーター向けのセッション状態スナップショットを返す。
// 取得前に承認ゲートを再評価するため、返される位置は常にゲート適用済み。
func (c *Controller) Snapshot(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	snap := Snapshot{
		Location:     c.location,
		MainCategory: c.mainCategory,
		SubCategory:  c.subCategory,
		SearchQuery:  c.searchQuery,
		CartLines:    c.cart.Lines(),
		CartCount:    c.cart.TotalCount(),
		CartTotal:    c.cart.TotalAmount(),
	}
	if c.user != nil {
		u := *c.user
		snap.User = &u
	}
	if c.selectedProduct != "" {
		snap.SelectedProduct = c.catalog.FindByID(c.selectedProduct)
	}
	return snap
}

// CurrentUser はログイン中ユーザーのコピーを返す。未ログイン時はnilを返す。
func (c *Controller) CurrentUser(ctx context.Context) *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guardLocked(ctx)

	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}
