package status

import (
	"sort"
	"sync"

	"github.com/arthur-debert/buildscripts/pkg/types"
)

// Store maps script names to build records. Records are created on first
// access and are never removed.
type Store struct {
	mu      sync.Mutex
	records map[string]*types.BuildRecord
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{records: make(map[string]*types.BuildRecord)}
}

// WithRecord runs fn with exclusive access to the record for name, creating
// a zero-valued record if none exists yet.
func (s *Store) WithRecord(name string, fn func(rec *types.BuildRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		rec = types.NewBuildRecord()
		s.records[name] = rec
	}
	fn(rec)
}

// ReadRecord returns a copy of the record for name. The boolean is false
// when no script has touched that name yet.
func (s *Store) ReadRecord(name string) (types.BuildRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return types.BuildRecord{}, false
	}
	return rec.Clone(), true
}

// Names returns the names of all records in lexicographic order
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a deep copy of every record
func (s *Store) Snapshot() map[string]types.BuildRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]types.BuildRecord, len(s.records))
	for name, rec := range s.records {
		out[name] = rec.Clone()
	}
	return out
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
