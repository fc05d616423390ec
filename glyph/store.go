package glyph

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// LoadFunc resolves one character's template from wherever a host keeps
// its reference data. Returning an error resolves the request to the
// generic fallback template; a LoadFunc is never asked twice for a
// character that is already resident.
type LoadFunc func(char string) (Template, error)

// Store provides thread-safe caching of character templates so each
// template is resolved at most once.
//
// Templates are stored keyed by character. A small basic set is loaded
// eagerly at construction and is never evicted; every other character is
// loaded on first request. Concurrent requests for the same uncached
// character share a single in-flight load.
//
// Store is safe for concurrent use by multiple goroutines.
//
// # Eviction
//
// Cached templates remain in memory until removed via Cleanup, which
// evicts non-basic entries in insertion order until the store is within
// the given size. The basic set never counts as evictable.
//
// # Example Usage
//
//	store := glyph.NewStore(glyph.Builtin(), nil)
//	tpl := store.Get("か")
//	// Use tpl...
//	store.Cleanup(32) // Optional: bound memory
type Store struct {
	mu        sync.RWMutex
	templates map[string]Template
	order     []string // insertion order of evictable entries
	basic     map[string]bool

	group singleflight.Group
	load  LoadFunc
}

// NewStore creates a Store backed by the given registry and seeds the
// basic character set.
//
// load resolves characters on first request; nil means "look the
// character up in reg, synthesizing the fallback template when absent".
// Hosts with remote or asset-backed template sources supply their own
// LoadFunc.
func NewStore(reg Registry, load LoadFunc) *Store {
	if load == nil {
		load = registryLoader(reg)
	}
	s := &Store{
		templates: make(map[string]Template),
		basic:     make(map[string]bool),
		load:      load,
	}
	for _, char := range Basic() {
		tpl, err := load(char)
		if err != nil {
			tpl = Fallback()
		}
		s.templates[char] = tpl
		s.basic[char] = true
	}
	return s
}

// registryLoader adapts a Registry into a LoadFunc. A missing character
// is not an error; it resolves to the fallback template.
func registryLoader(reg Registry) LoadFunc {
	return func(char string) (Template, error) {
		if tpl, ok := reg[char]; ok {
			return tpl, nil
		}
		return Fallback(), nil
	}
}

// Get returns the template for a character, loading it on first request.
//
// Get never fails: a character the loader cannot resolve yields the
// generic fallback template, which is cached like any other entry.
// Concurrent calls for the same uncached character share one load
// rather than issuing duplicates.
func (s *Store) Get(char string) Template {
	s.mu.RLock()
	if tpl, ok := s.templates[char]; ok {
		s.mu.RUnlock()
		return tpl
	}
	s.mu.RUnlock()

	v, _, _ := s.group.Do(char, func() (interface{}, error) {
		// A previous flight may have completed between the fast-path
		// check and joining the group.
		s.mu.RLock()
		if tpl, ok := s.templates[char]; ok {
			s.mu.RUnlock()
			return tpl, nil
		}
		s.mu.RUnlock()

		tpl, err := s.load(char)
		if err != nil {
			tpl = Fallback()
		}
		s.put(char, tpl)
		return tpl, nil
	})
	return v.(Template)
}

// put inserts a loaded template, tracking insertion order for eviction.
func (s *Store) put(char string, tpl Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[char]; ok {
		return
	}
	s.templates[char] = tpl
	if !s.basic[char] {
		s.order = append(s.order, char)
	}
}

// Warm preloads templates for the given characters, running at most
// maxConcurrent loads at a time. Characters already resident are
// skipped by the usual cache fast path.
//
// Warm returns an error only when ctx is cancelled before all loads
// have been started; loads themselves cannot fail.
func (s *Store) Warm(ctx context.Context, chars []string, maxConcurrent int) error {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	sem := semaphore.NewWeighted(int64(maxConcurrent))
	var wg sync.WaitGroup

	for _, char := range chars {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return fmt.Errorf("warm interrupted: %w", err)
		}
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			defer sem.Release(1)
			s.Get(c)
		}(char)
	}

	wg.Wait()
	return nil
}

// Cleanup evicts templates until the store holds at most maxSize entries,
// removing non-basic entries oldest-first. Basic entries are never
// evicted, so the store may stay above maxSize when nothing evictable
// remains. Returns the number of entries evicted.
func (s *Store) Cleanup(maxSize int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for len(s.templates) > maxSize && len(s.order) > 0 {
		char := s.order[0]
		s.order = s.order[1:]
		delete(s.templates, char)
		evicted++
	}
	return evicted
}

// Len returns the number of templates currently resident.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// Contains reports whether a character's template is resident without
// triggering a load.
func (s *Store) Contains(char string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.templates[char]
	return ok
}
