package bind

import (
	"runtime"
	"sync"
	"weak"
)

// sideTable associates bookkeeping with instances it does not own. Keys are
// weak, and entries are dropped by a GC cleanup once the instance becomes
// unreachable, so the table is never the reason an instance stays alive.
type sideTable[T any, V any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[T]]*V
}

func (t *sideTable[T, V]) get(h *T) (*V, bool) {
	key := weak.Make(h)
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.entries[key]
	return v, ok
}

func (t *sideTable[T, V]) getOrCreate(h *T, create func() *V) *V {
	key := weak.Make(h)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries == nil {
		t.entries = make(map[weak.Pointer[T]]*V)
	}
	if v, ok := t.entries[key]; ok {
		return v
	}
	v := create()
	t.entries[key] = v
	runtime.AddCleanup(h, func(k weak.Pointer[T]) {
		t.mu.Lock()
		delete(t.entries, k)
		t.mu.Unlock()
	}, key)
	return v
}
