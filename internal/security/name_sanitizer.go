// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizer は登録フォームで入力された表示名をサニタイズし、
// 画面に表示される値にマークアップが混入することを防ぐ。
// bluemondayのStrictPolicyですべてのHTMLタグと属性を除去する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizerService は表示名サニタイズ機能のインターフェースを定義する。
// ユーザー登録時、ディレクトリへの保存前に使用される。
type NameSanitizerService interface {
	// Sanitize は表示名からすべてのHTMLタグ・属性を除去し、前後の空白を取り除く。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(name string) string
}

// nameSanitizer はNameSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type nameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグを一切許可しないため、表示名は常にプレーンテキストになる。
func NewNameSanitizer() *nameSanitizer {
	return &nameSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は表示名をサニタイズして返す。
func (s *nameSanitizer) Sanitize(name string) string {
	return strings.TrimSpace(s.policy.Sanitize(name))
}
