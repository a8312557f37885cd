// Package bloom provides duplicate-section detection using Bloom filters.
//
// Archives carry the same issue scanned more than once, so repeated runs
// keep extracting identical section bodies. The filter answers "have I seen
// this content hash before" cheaply; a positive answer is confirmed against
// the catalog because Bloom filters admit false positives.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks section content hashes seen during a run.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected sections
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a content hash in the filter.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the content hash might have been seen.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}
