package attendance

import "sync"

// keyedMutex serializes work per key. The import pipeline locks on the
// employee code around each read-modify-write of the salary accumulators,
// so two concurrent imports touching the same employee cannot lose an
// update to each other.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock func. Mutexes are
// retained for reuse; the map is bounded by the number of distinct keys.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
