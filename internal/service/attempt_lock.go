package service

import "sync"

// attemptLocks serializes answer submission and completion per attempt, so
// scoring always reads a consistent snapshot of the responses.
type attemptLocks struct {
	mu    sync.Mutex
	locks map[uint]*attemptLock
}

type attemptLock struct {
	mu   sync.Mutex
	refs int
}

func newAttemptLocks() *attemptLocks {
	return &attemptLocks{locks: make(map[uint]*attemptLock)}
}

func (l *attemptLocks) Lock(attemptID uint) {
	l.mu.Lock()
	entry, ok := l.locks[attemptID]
	if !ok {
		entry = &attemptLock{}
		l.locks[attemptID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *attemptLocks) Unlock(attemptID uint) {
	l.mu.Lock()
	entry := l.locks[attemptID]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, attemptID)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
