// Package repository defines the membership capability that pipeline steps
// receive through configuration binding, with two in-memory implementations.
package repository

import (
	"slices"
	"sync"
)

// Repository is a mutable membership set owned by the caller.
type Repository interface {
	Contains(key string) bool
	Insert(key string)
}

// AtomicInserter is implemented by repositories that can check and insert
// in one step.
type AtomicInserter interface {
	InsertIfAbsent(key string) bool
}

// Set is an in-memory Repository. The zero value is an empty set ready to
// use. It is not safe for concurrent use.
type Set struct {
	keys map[string]struct{}
}

func NewSet(seed ...string) *Set {
	s := &Set{keys: make(map[string]struct{}, len(seed))}
	for _, k := range seed {
		s.keys[k] = struct{}{}
	}
	return s
}

func (s *Set) Contains(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *Set) Insert(key string) {
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	s.keys[key] = struct{}{}
}

func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the members in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SyncSet is a Repository safe for concurrent pipeline invocations. The zero
// value is an empty set ready to use.
type SyncSet struct {
	mu  sync.RWMutex
	set Set
}

func NewSyncSet(seed ...string) *SyncSet {
	return &SyncSet{set: *NewSet(seed...)}
}

func (s *SyncSet) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(key)
}

func (s *SyncSet) Insert(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Insert(key)
}

// InsertIfAbsent inserts key and reports true only if it was not present.
func (s *SyncSet) InsertIfAbsent(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.Contains(key) {
		return false
	}
	s.set.Insert(key)
	return true
}

func (s *SyncSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

func (s *SyncSet) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Keys()
}

var (
	_ Repository     = (*Set)(nil)
	_ Repository     = (*SyncSet)(nil)
	_ AtomicInserter = (*SyncSet)(nil)
)
