package citation

import (
	"sort"
	"sync"
)

// Record identifies one publication to attribute. Key is the identity used
// for idempotent registration; two Records with equal Keys are the same
// citation regardless of the remaining fields.
type Record struct {
	Key     string
	Title   string
	Authors string
	Journal string
	Year    int
	DOI     string
}

// Registry is an additive, idempotent set of attribution Records.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Add registers r. Registration is idempotent: the first Record stored
// under a Key wins and later Adds with the same Key are no-ops.
// Complexity: O(1).
func (r *Registry) Add(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.Key]; ok {
		return
	}
	r.records[rec.Key] = rec
}

// Has reports whether a Record with the given key has been registered.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[key]

	return ok
}

// Len returns the number of distinct Records registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}

// All returns a key-sorted copy of every registered Record.
// Complexity: O(n log n).
func (r *Registry) All() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// defaultRegistry is the process-lifetime registry returned by Default.
var defaultRegistry = NewRegistry()

// Default returns the shared process-wide Registry. Builders fall back to
// it when no explicit sink is injected.
func Default() *Registry {
	return defaultRegistry
}
