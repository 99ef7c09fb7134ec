// Package vars holds the global build parameters given on the command line
// as key==value pairs. Script bodies read them through Store.Get.
package vars

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/buildscripts/pkg/logging"
)

// Separator splits a command-line parameter into key and value
const Separator = "=="

// Store is a concurrency-safe key/value string store
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value for key and whether it was set
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback when it is not set
func (s *Store) GetOr(key, fallback string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// Keys returns all keys in lexicographic order
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseArg splits "key==value" at the first separator. Arguments without a
// separator are not parameters.
func ParseArg(arg string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(arg, Separator)
	return key, value, ok
}

// ParseArgs stores every key==value argument and returns the arguments that
// were not parameters, in their original order.
func (s *Store) ParseArgs(args []string) []string {
	logger := logging.GetLogger("vars")

	var ignored []string
	for _, arg := range args {
		key, value, ok := ParseArg(arg)
		if !ok {
			logger.Warn().Str("arg", arg).Msg("Ignoring argument not in key==value form")
			ignored = append(ignored, arg)
			continue
		}
		s.Set(key, value)
		logger.Debug().Str("key", key).Str("value", value).Msg("Parameter set")
	}
	return ignored
}
