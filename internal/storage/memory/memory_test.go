package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mmynk/prorata/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := NewWithData(map[string]string{"seed": "1"})

	if v, err := s.Get(ctx, "seed"); err != nil || v != "1" {
		t.Fatalf("Get(seed) = %q, %v", v, err)
	}
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "seed", "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := s.Get(ctx, "seed"); v != "2" {
		t.Errorf("Get after Set = %q, want 2", v)
	}

	if err := s.Delete(ctx, "seed"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "seed"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
	if _, err := s.Get(ctx, "seed"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
	}
}

func TestStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", "v")
			_, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()

	if v, err := s.Get(ctx, "k"); err != nil || v != "v" {
		t.Errorf("Get(k) = %q, %v", v, err)
	}
}
