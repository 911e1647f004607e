// Package directory は登録ユーザーの管理を提供する。
//
// ユーザー一覧はプロセス内に保持し、すべての変更操作は完了前に
// 外部ストアのusers-listエントリへ全件を書き戻す（ライトスルー）。
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hitoshi/smartcatalog/internal/kvs"
	"github.com/hitoshi/smartcatalog/internal/model"
	"github.com/hitoshi/smartcatalog/internal/security"
)

// Service はユーザーディレクトリのサービス層。
type Service struct {
	mu        sync.Mutex
	store     kvs.Store
	sanitizer security.NameSanitizerService
	users     []model.User
}

// NewService はServiceの新しいインスタンスを生成する。
// 初期状態は組み込みのシードユーザーで、Loadで永続化済みデータに置き換わる。
func NewService(store kvs.Store, sanitizer security.NameSanitizerService) *Service {
	return &Service{
		store:     store,
		sanitizer: sanitizer,
		users:     seedUsers(),
	}
}

// seedUsers は外部ストアにデータがない場合の組み込みユーザー一覧を返す。
func seedUsers() []model.User {
	return []model.User{
		{
			ID:         "u1",
			Name:       "Demo Admin",
			Email:      "admin@demo.com",
			IsApproved: true,
			PriceTier:  model.TierStandard,
			AvatarURL:  "https://i.pravatar.cc/150?u=admin",
			IsAdmin:    true,
		},
		{
			ID:         "u2",
			Name:       "Wholesale Partner",
			Email:      "vip@wholesale.com",
			IsApproved: true,
			PriceTier:  model.TierVIP,
			AvatarURL:  "https://i.pravatar.cc/150?u=u2",
		},
	}
}

// Load は外部ストアからユーザー一覧を読み込む。起動時に1回呼び出す。
// エントリが存在しない、または解析できない場合は組み込みシードを維持する。
func (s *Service) Load(ctx context.Context) error {
	data, err := s.store.Get(ctx, kvs.KeyUsersList)
	if err != nil {
		return fmt.Errorf("ユーザー一覧の読み込みに失敗しました: %w", err)
	}
	if data == nil {
		return nil
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		slog.Warn("persisted users-list is corrupted, falling back to seed",
			slog.String("error", err.Error()),
		)
		return nil
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// FindByEmail はメールアドレスでユーザーを検索する。大文字小文字は区別しない。
// 見つからない場合はnilを返す。
func (s *Service) FindByEmail(email string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// FindByID はIDでユーザーを検索する。見つからない場合はnilを返す。
func (s *Service) FindByID(id string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// List は全ユーザーのコピーを返す。管理者画面で使用する。
func (s *Service) List() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users
}

// Register は新規ユーザーを登録する。
// 同一メールアドレス（大文字小文字を区別しない）が既に存在する場合は
// DUPLICATE_EMAILエラーを返し、状態を変更しない。
// 成功時は未承認・STANDARD区分のユーザーを末尾に追加し、ライトスルーする。
func (s *Service) Register(ctx context.Context, name, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return nil, model.NewDuplicateEmailError(email)
		}
	}

	if s.sanitizer != nil {
		name = s.sanitizer.Sanitize(name)
	}

	user := model.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		IsApproved: false,
		PriceTier:  model.TierStandard,
		AvatarURL:  "https://i.pravatar.cc/150?u=" + email,
	}
	s.users = append(s.users, user)
	s.persistLocked(ctx)

	return &user, nil
}

// Update はIDが一致するユーザーを置き換え、ライトスルーする。
// IDが存在しない場合は何もしない。
func (s *Service) Update(ctx context.Context, user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			s.persistLocked(ctx)
			return
		}
	}
}

// Approve は指定ユーザーを承認済みにして返す。
// 見つからない場合はUSER_NOT_FOUNDエラーを返す。
func (s *Service) Approve(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsApproved = true
			s.persistLocked(ctx)
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, model.NewUserNotFoundError(id)
}

// SetPriceTier は指定ユーザーの価格区分を変更して返す。
// 区分が未定義の場合はINVALID_TIER、ユーザーが見つからない場合は
// USER_NOT_FOUNDエラーを返す。
func (s *Service) SetPriceTier(ctx context.Context, id string, tier model.PriceTier) (*model.User, error) {
	if !tier.Valid() {
		return nil, model.NewInvalidTierError(string(tier))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PriceTier = tier
			s.persistLocked(ctx)
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, model.NewUserNotFoundError(id)
}

// persistLocked はユーザー一覧全体をusers-listエントリに書き戻す。
// 呼び出し側がmuを保持していること。
// 書き込み失敗はログに記録するのみで、操作自体は成立させる。
func (s *Service) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.users)
	if err != nil {
		slog.Error("failed to marshal users-list", slog.String("error", err.Error()))
		return
	}
	if err := s.store.Set(ctx, kvs.KeyUsersList, data); err != nil {
		slog.Error("failed to persist users-list", slog.String("error", err.Error()))
	}
}
