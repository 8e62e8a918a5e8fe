// Package keylock serializes operations on individual question and wallet
// keys. Operations on distinct keys never contend; operations on the same
// key are linearized by an exclusive per-key lock.
package keylock

import (
	"slices"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Registry hands out one exclusive lock per key. Entries are reference
// counted and removed once the last holder releases, so the registry stays
// proportional to the number of keys currently contended.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Lock acquires the exclusive lock for key and returns the matching release
// function. Release must be called exactly once, including on cancellation
// or panic paths, so no partial state stays guarded forever.
func (r *Registry) Lock(key string) (release func()) {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		r.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(r.entries, key)
		}
		r.mu.Unlock()
	}
}

// LockOrdered acquires the locks for all given keys in ascending key order,
// deduplicating repeats. Acquiring in a single canonical order keeps two
// events that touch the same pair of keys from deadlocking each other.
func (r *Registry) LockOrdered(keys ...string) (release func()) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	releases := make([]func(), 0, len(sorted))
	for _, key := range sorted {
		releases = append(releases, r.Lock(key))
	}

	return func() {
		// Release in reverse acquisition order.
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
}
