package redis

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/config"
	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端连接；未启用时保持 Rdb 为 nil，
// 相关缓存与锁操作自动退化
func InitRedis(cfg config.RedisConfig) error {
	if !cfg.Enabled {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool {
	return Rdb != nil
}
