// Package ids generates identifiers for people, periods and bills.
package ids

import "github.com/google/uuid"

// Generator produces unique opaque string identifiers.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}

// Sequence returns the given ids in order, then falls back to UUIDs.
// It makes generated ids predictable in tests.
type Sequence struct {
	IDs  []string
	next int
}

// NewID returns the next id of the sequence.
func (s *Sequence) NewID() string {
	if s.next >= len(s.IDs) {
		return UUID{}.NewID()
	}
	id := s.IDs[s.next]
	s.next++
	return id
}
