package scheduler

import "sync"

// KeyedMutex serializes mutations per queue. Locks are created lazily on
// first use and kept for the life of the process; a mutex is a few words, so
// even hundreds of thousands of active queues stay cheap. There is no global
// lock on the hot path: two different keys never contend.
type KeyedMutex struct {
	locks sync.Map // QueueKey -> *sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key and returns the unlock func.
func (m *KeyedMutex) Lock(key QueueKey) func() {
	v, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
