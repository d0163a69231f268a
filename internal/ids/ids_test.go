package ids

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID(t *testing.T) {
	gen := UUID{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("NewID() = %q is not a UUID: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	seq := &Sequence{IDs: []string{"a", "b"}}
	if got := seq.NewID(); got != "a" {
		t.Errorf("first id = %q, want a", got)
	}
	if got := seq.NewID(); got != "b" {
		t.Errorf("second id = %q, want b", got)
	}
	if _, err := uuid.Parse(seq.NewID()); err != nil {
		t.Errorf("exhausted sequence should fall back to UUIDs: %v", err)
	}
}
