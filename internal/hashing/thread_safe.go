package hashing

import (
	"sync"
)

// ThreadSafeDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDetector(maxCapacity int) *ThreadSafeDetector {
	return &ThreadSafeDetector{
		detector: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks if a position is a duplicate and records it.
func (d *ThreadSafeDetector) CheckAndAdd(p Position) bool {
	if p.Board == nil {
		return false
	}
	sig := SignatureOf(p)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.checkAndAddSignature(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique positions.
func (d *ThreadSafeDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// LoadFromDetector copies entries from an existing detector. Call before concurrent use.
func (d *ThreadSafeDetector) LoadFromDetector(other *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	duplicates := d.detector.duplicateCount
	for _, sigs := range other.hashTable {
		for _, sig := range sigs {
			d.detector.checkAndAddSignature(sig)
		}
	}
	d.detector.duplicateCount = duplicates
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
