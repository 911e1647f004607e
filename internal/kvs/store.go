// Package kvs は外部キーバリューストアへの読み書きインターフェースを提供する。
// 永続化レイアウトは独立した2エントリのみで構成される:
// users-list（全ユーザーのJSON配列）と current-user（ログイン中ユーザーのJSON）。
package kvs

import "context"

// 永続化エントリのキー
const (
	// KeyUsersList は全ユーザーレコードのJSON配列を保持するキー。
	// ディレクトリの変更ごとに全体を書き直す。
	KeyUsersList = "users-list"
	// KeyCurrentUser はログイン中ユーザーのJSONを保持するキー。
	// ログアウト時にはエントリごと削除する。
	KeyCurrentUser = "current-user"
)

// Store はキーバリューストアの読み書きインターフェース。
type Store interface {
	// Get は指定キーの値を取得する。キーが存在しない場合は (nil, nil) を返す。
	Get(ctx context.Context, key string) ([]byte, error)
	// Set は指定キーに値を書き込む。既存の値は上書きされる。
	Set(ctx context.Context, key string, value []byte) error
	// Delete は指定キーのエントリを削除する。キーが存在しない場合は何もしない。
	Delete(ctx context.Context, key string) error
}
