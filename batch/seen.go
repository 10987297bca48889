package batch

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// seenFalsePositiveRate is the rate at which the Bloom filter sends a new
// URL to the exact set for confirmation.
const seenFalsePositiveRate = 0.001

// Seen tracks URLs that have already been queued. A Bloom filter answers
// the common "definitely new" case and an exact set confirms every
// possible hit, so distinct URLs are never reported as seen. It is safe
// for concurrent use.
type Seen struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
	keys   map[string]struct{}
}

// NewSeen creates a Seen sized for n expected URLs with the given false
// positive rate for the filter.
func NewSeen(n uint, fpRate float64) *Seen {
	return &Seen{
		filter: bloom.NewWithEstimates(n, fpRate),
		keys:   make(map[string]struct{}, n),
	}
}

// Add records rawURL and reports whether it was new. URLs differing only
// by fragment are the same URL.
func (s *Seen) Add(rawURL string) bool {
	key := stripFragment(rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filter.TestOrAddString(key) {
		if _, ok := s.keys[key]; ok {
			return false
		}
	}
	s.keys[key] = struct{}{}
	return true
}

// Has reports whether rawURL has been added.
func (s *Seen) Has(rawURL string) bool {
	key := stripFragment(rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.filter.TestString(key) {
		return false
	}
	_, ok := s.keys[key]
	return ok
}

// Count returns the number of distinct URLs added.
func (s *Seen) Count() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(len(s.keys))
}

func stripFragment(rawURL string) string {
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
