package service

import (
	"context"
	"sync"
	"time"
)

// Locker 按键互斥，用于保证同一员工同一时刻只有一个同步在跑
type Locker interface {
	TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error)
	Unlock(ctx context.Context, key string, value string)
}

// localLocker 进程内锁，Redis 未启用时使用
type localLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func NewLocalLocker() Locker {
	return &localLocker{held: make(map[string]string)}
}

func (l *localLocker) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		l.mu.Lock()
		if _, ok := l.held[key]; !ok {
			l.held[key] = value
			l.mu.Unlock()
			return true, nil
		}
		l.mu.Unlock()
		time.Sleep(time.Millisecond * 200)
	}
	return false, nil
}

func (l *localLocker) Unlock(ctx context.Context, key string, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if holder, ok := l.held[key]; ok && holder == value {
		delete(l.held, key)
	}
}
