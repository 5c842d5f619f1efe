package lock

import (
	"context"
	"sync"
)

// MemoryLocker is a process-local Locker. Entries are reference counted and
// removed once no caller holds or waits on them.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*memoryEntry
}

type memoryEntry struct {
	slot chan struct{}
	refs int
}

// NewMemoryLocker creates an empty MemoryLocker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*memoryEntry)}
}

// Lock implements Locker
func (l *MemoryLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &memoryEntry{slot: make(chan struct{}, 1)}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.slot <- struct{}{}:
	case <-ctx.Done():
		l.release(key, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.slot
			l.release(key, entry)
		})
	}, nil
}

func (l *MemoryLocker) release(key string, entry *memoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
}

// Len returns the number of keys currently held or waited on.
func (l *MemoryLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
