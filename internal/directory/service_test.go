package directory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hitoshi/smartcatalog/internal/kvs"
	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/security"
)

// --- モック ---

// recordingStore はSet/Deleteの呼び出しを記録するkvs.Store実装。
type recordingStore struct {
	*kvs.MemoryStore
	setCalls []string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryStore: kvs.NewMemoryStore()}
}

func (r *recordingStore) Set(ctx context.Context, key string, value []byte) error {
	r.setCalls = append(r.setCalls, key)
	return r.MemoryStore.Set(ctx, key, value)
}

func newTestService(store kvs.Store) *Service {
	return NewService(store, security.NewNameSanitizer())
}

// --- テスト ---

// TestService_FindByEmail_CaseInsensitive はメールアドレス検索が
// 大文字小文字を区別しないことを検証する。
func TestService_FindByEmail_CaseInsensitive(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	u := svc.FindByEmail("ADMIN@DEMO.COM")
	if u == nil {
		t.Fatal("expected admin@demo.com to be found with upper-case query")
	}
	if u.ID != "u1" {
		t.Errorf("id = %q, want %q", u.ID, "u1")
	}

	if svc.FindByEmail("nobody@example.com") != nil {
		t.Error("expected nil for unknown email")
	}
}

// TestService_Register_Defaults は新規登録ユーザーの初期状態を検証する。
func TestService_Register_Defaults(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	u, err := svc.Register(context.Background(), "New User", "new@x.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID == "" {
		t.Error("expected a fresh unique ID")
	}
	if u.IsApproved {
		t.Error("new user must start unapproved")
	}
	if u.PriceTier != model.TierStandard {
		t.Errorf("tier = %q, want %q", u.PriceTier, model.TierStandard)
	}
	if u.IsAdmin {
		t.Error("new user must not be admin")
	}
}

// TestService_Register_DuplicateEmailCaseInsensitive は大文字小文字のみが異なる
// メールアドレスでの登録がDUPLICATE_EMAILで失敗することを検証する。
func TestService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	_, err := svc.Register(context.Background(), "Someone", "Admin@Demo.Com")
	if err == nil {
		t.Fatal("expected DUPLICATE_EMAIL error, got nil")
	}
	apiErr, ok := err.(*model.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *model.APIError", err)
	}
	if apiErr.Code != model.ErrCodeDuplicateEmail {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeDuplicateEmail)
	}

	// 状態は変化しない
	if len(svc.List()) != 2 {
		t.Errorf("users = %d, want 2", len(svc.List()))
	}
}

// TestService_Register_SanitizesName は表示名のマークアップが除去されることを検証する。
func TestService_Register_SanitizesName(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	u, err := svc.Register(context.Background(), "<script>x</script>Eve", "eve@x.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.Name != "Eve" {
		t.Errorf("name = %q, want %q", u.Name, "Eve")
	}
}

// TestService_Register_WritesThrough は登録がusers-listエントリへ
// ライトスルーされることを検証する。
func TestService_Register_WritesThrough(t *testing.T) {
	store := newRecordingStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "New User", "new@x.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if len(store.setCalls) != 1 || store.setCalls[0] != kvs.KeyUsersList {
		t.Fatalf("set calls = %v, want [%s]", store.setCalls, kvs.KeyUsersList)
	}

	data, _ := store.Get(context.Background(), kvs.KeyUsersList)
	var persisted []model.User
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted users-list is not valid JSON: %v", err)
	}
	if len(persisted) != 3 {
		t.Errorf("persisted users = %d, want 3", len(persisted))
	}
}

// TestService_Update はID一致での置き換えと、ID不一致での無視を検証する。
func TestService_Update(t *testing.T) {
	store := newRecordingStore()
	svc := newTestService(store)

	u := svc.FindByID("u2")
	u.Name = "Renamed Partner"
	svc.Update(context.Background(), *u)

	if got := svc.FindByID("u2"); got.Name != "Renamed Partner" {
		t.Errorf("name = %q, want %q", got.Name, "Renamed Partner")
	}
	if len(store.setCalls) != 1 {
		t.Errorf("set calls = %d, want 1", len(store.setCalls))
	}

	// 存在しないIDは何も変更せず、永続化もしない
	svc.Update(context.Background(), model.User{ID: "missing"})
	if len(svc.List()) != 2 {
		t.Errorf("users = %d, want 2", len(svc.List()))
	}
	if len(store.setCalls) != 1 {
		t.Errorf("set calls = %d, want 1 (absent ID must be a no-op)", len(store.setCalls))
	}
}

// TestService_Approve は承認フラグの更新とエラーを検証する。
func TestService_Approve(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	u, err := svc.Register(context.Background(), "New User", "new@x.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	approved, err := svc.Approve(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if !approved.IsApproved {
		t.Error("expected user to be approved")
	}

	if _, err := svc.Approve(context.Background(), "missing"); err == nil {
		t.Error("expected USER_NOT_FOUND for unknown ID")
	}
}

// TestService_SetPriceTier は価格区分の変更と検証エラーを検証する。
func TestService_SetPriceTier(t *testing.T) {
	svc := newTestService(kvs.NewMemoryStore())

	u, err := svc.SetPriceTier(context.Background(), "u1", model.TierWholesale)
	if err != nil {
		t.Fatalf("SetPriceTier returned error: %v", err)
	}
	if u.PriceTier != model.TierWholesale {
		t.Errorf("tier = %q, want %q", u.PriceTier, model.TierWholesale)
	}

	if _, err := svc.SetPriceTier(context.Background(), "u1", model.PriceTier("GOLD")); err == nil {
		t.Error("expected INVALID_TIER for unknown tier")
	}
	if _, err := svc.SetPriceTier(context.Background(), "missing", model.TierVIP); err == nil {
		t.Error("expected USER_NOT_FOUND for unknown ID")
	}
}

// TestService_Load は永続化済みデータの読み込みとシードへのフォールバックを検証する。
func TestService_Load(t *testing.T) {
	t.Run("永続化済みデータを優先", func(t *testing.T) {
		store := kvs.NewMemoryStore()
		persisted := []model.User{
			{ID: "u9", Name: "Saved", Email: "saved@x.com", IsApproved: true, PriceTier: model.TierVIP},
		}
		data, _ := json.Marshal(persisted)
		_ = store.Set(context.Background(), kvs.KeyUsersList, data)

		svc := newTestService(store)
		if err := svc.Load(context.Background()); err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		users := svc.List()
		if len(users) != 1 || users[0].ID != "u9" {
			t.Errorf("users = %+v, want persisted list", users)
		}
	})

	t.Run("エントリがなければシードを維持", func(t *testing.T) {
		svc := newTestService(kvs.NewMemoryStore())
		if err := svc.Load(context.Background()); err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if len(svc.List()) != 2 {
			t.Errorf("users = %d, want 2 seed users", len(svc.List()))
		}
	})

	t.Run("壊れたJSONはシードを維持", func(t *testing.T) {
		store := kvs.NewMemoryStore()
		_ = store.Set(context.Background(), kvs.KeyUsersList, []byte("{not json"))

		svc := newTestService(store)
		if err := svc.Load(context.Background()); err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if len(svc.List()) != 2 {
			t.Errorf("users = %d, want 2 seed users", len(svc.List()))
		}
	})
}
