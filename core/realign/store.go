// core/realign/store.go
package realign

import (
	"strconv"

	gocache "github.com/patrickmn/go-cache"
)

// Store holds realignments keyed by fragment index. Entries never expire;
// Flush releases them once a run is done with them. Safe for concurrent use.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Put stores the realignment of fragment i.
func (s *Store) Put(i int, a Alignment) {
	s.cache.Set(strconv.Itoa(i), a, gocache.NoExpiration)
}

// Get returns the realignment of fragment i, if there is one.
func (s *Store) Get(i int) (Alignment, bool) {
	if v, found := s.cache.Get(strconv.Itoa(i)); found {
		return v.(Alignment), true
	}
	return Alignment{}, false
}

// Len is the number of stored realignments.
func (s *Store) Len() int { return s.cache.ItemCount() }

// Flush drops every entry.
func (s *Store) Flush() { s.cache.Flush() }
