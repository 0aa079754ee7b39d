package services

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// KeyedLock serialises work per key while unrelated keys proceed in
// parallel. Mutexes are kept for the life of the process; keys are
// filenames of the storage root so the set stays as small as the listing.
type KeyedLock struct {
	locks *xsync.Map[string, *sync.Mutex]
}

func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: xsync.NewMap[string, *sync.Mutex]()}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *KeyedLock) Lock(key string) func() {
	mu, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}
