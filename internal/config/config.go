// Package config は環境変数からのアプリケーション設定の読み込みを提供する。
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string

	// Redis
	// RedisAddrが空の場合は外部ストアを使わず、プロセス内のメモリストアで動作する。
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate Limit
	RateLimitGeneral int
	RateLimitAuth    int

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envファイルがあれば先に読み込む（未存在は無視）。
// すべての項目にデフォルト値があるため、環境変数なしでも起動できる。
func Load() (*Config, error) {
	// .envは開発時の利便のためで、本番では環境変数を直接設定する
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        getEnvString("SERVER_PORT", "8080"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RateLimitGeneral:  getEnvInt("RATE_LIMIT_GENERAL", 120),
		RateLimitAuth:     getEnvInt("RATE_LIMIT_AUTH", 10),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
