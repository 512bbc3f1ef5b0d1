package concurrency

import (
	"sync"
)

// LockManager hands out named mutexes. Every state-mutating player action
// locks the owner's name for its whole duration: the original runtime
// serialized actions per owner, and that guarantee has to be reintroduced
// here explicitly.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
