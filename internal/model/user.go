// Package model はドメインモデルを定義する。
package model

// PriceTier は顧客の価格区分を表す。
// 全商品はすべての区分に対する価格を定義する。
type PriceTier string

const (
	// TierStandard は標準価格区分。新規登録ユーザーの初期値。
	TierStandard PriceTier = "STANDARD"
	// TierWholesale は卸売価格区分。
	TierWholesale PriceTier = "WHOLESALE"
	// TierVIP はVIP価格区分。
	TierVIP PriceTier = "VIP"
)

// AllPriceTiers は定義済みの全価格区分を返す。
func AllPriceTiers() []PriceTier {
	return []PriceTier{TierStandard, TierWholesale, TierVIP}
}

// Valid は価格区分が定義済みの値かどうかを返す。
func (t PriceTier) Valid() bool {
	switch t {
	case TierStandard, TierWholesale, TierVIP:
		return true
	}
	return false
}

// User はストアの利用ユーザーを表す。
// メールアドレスはディレクトリ内で一意（大文字小文字を区別しない）。
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsApproved bool      `json:"isApproved"`
	PriceTier  PriceTier `json:"priceListId"`
	AvatarURL  string    `json:"avatar,omitempty"`
	IsAdmin    bool      `json:"isAdmin,omitempty"`
}
