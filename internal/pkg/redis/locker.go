package redis

import (
	"context"
	"time"
)

// SyncLocker 基于 Redis SetNX 的分布式锁实现
type SyncLocker struct{}

func NewSyncLocker() *SyncLocker {
	return &SyncLocker{}
}

func (l *SyncLocker) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	return TryLock(ctx, key, value, expiration, retryTimes)
}

func (l *SyncLocker) Unlock(ctx context.Context, key string, value string) {
	UnLock(ctx, key, value)
}
