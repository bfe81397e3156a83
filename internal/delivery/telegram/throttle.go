package telegram

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const throttleMaxEntries = 10000

// userThrottle keeps one token-bucket limiter per user, allowing a
// single message per second. Idle entries are pruned once the map grows
// past throttleMaxEntries.
type userThrottle struct {
	mu      sync.Mutex
	entries map[int64]*throttleEntry
}

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newUserThrottle() *userThrottle {
	return &userThrottle{entries: make(map[int64]*throttleEntry)}
}

func (t *userThrottle) Allow(tgID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[tgID]
	if !ok {
		if len(t.entries) >= throttleMaxEntries {
			t.prune()
		}
		e = &throttleEntry{limiter: rate.NewLimiter(rate.Every(time.Second), 1)}
		t.entries[tgID] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

func (t *userThrottle) prune() {
	cutoff := time.Now().Add(-time.Minute)
	for id, e := range t.entries {
		if e.lastSeen.Before(cutoff) {
			delete(t.entries, id)
		}
	}
}
