package kvs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore はRedisをバックエンドとするStore実装。
type RedisStore struct {
	client *redis.Client
}

// RedisConfig はRedis接続の設定。
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore は指定設定のRedisに接続するRedisStoreを生成する。
// 接続確認に失敗した場合はエラーを返す。
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Ping は接続確認を行う。起動時のヘルスチェックに使用する。
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close は接続を閉じる。
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get は指定キーの値を取得する。キーが存在しない場合は (nil, nil) を返す。
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set は指定キーに値を書き込む。有効期限は設定しない。
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete は指定キーのエントリを削除する。
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
