package concurrency

import (
	"sync"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out per-key mutexes. Entries are dropped once no caller holds or waits on them,
// so keys for finished giveaways do not accumulate.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the lock for key is held and returns the function that releases it
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}

// Len returns the number of keys currently tracked
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
