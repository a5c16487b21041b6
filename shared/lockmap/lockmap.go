package lockmap

import "sync"

// LockMap serializes critical sections per string key. The scheduling engine
// locks an esteticista name around every conflict-check-then-write sequence,
// and the inventory ledger locks a product id around stock mutations. Locks
// for different keys never contend.
type LockMap struct {
	locks sync.Map
}

func New() *LockMap {
	return &LockMap{}
}

// Lock acquires the mutex for key, creating it on first use. Mutexes are kept
// for the process lifetime; the key space (staff names, product ids) is small.
func (l *LockMap) Lock(key string) {
	l.mutex(key).Lock()
}

// Unlock releases the mutex for key.
func (l *LockMap) Unlock(key string) {
	l.mutex(key).Unlock()
}

func (l *LockMap) mutex(key string) *sync.Mutex {
	actual, _ := l.locks.LoadOrStore(key, &sync.Mutex{})

	return actual.(*sync.Mutex)
}
