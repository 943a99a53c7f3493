package cards

import "sync"

// IDAllocator hands out negative identities for custom cards. The same
// persisted id always maps to the same identity for the allocator's
// lifetime, and distinct persisted ids never share one.
type IDAllocator struct {
	mu   sync.Mutex
	next int64
	ids  map[string]int64
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{
		next: -1,
		ids:  make(map[string]int64),
	}
}

// ID returns the session identity for a persisted custom card id.
func (a *IDAllocator) ID(customID string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id, ok := a.ids[customID]; ok {
		return id
	}
	id := a.next
	a.next--
	a.ids[customID] = id
	return id
}

// Lookup resolves a session identity back to the persisted id.
func (a *IDAllocator) Lookup(id int64) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for customID, v := range a.ids {
		if v == id {
			return customID, true
		}
	}
	return "", false
}
