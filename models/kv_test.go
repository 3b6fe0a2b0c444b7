package models

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryKVMissingKey(t *testing.T) {
	store := NewMemoryKV()

	val, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v, missing keys must not error", err)
	}
	if val != "" {
		t.Errorf("Get() = %q, want empty string for missing key", val)
	}
}

func TestMemoryKVSetGet(t *testing.T) {
	store := NewMemoryKV()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, _ := store.Get(ctx, "k")
	if val != "v2" {
		t.Errorf("Get() = %q, want latest write v2", val)
	}
}

func TestMemoryKVConcurrentAccess(t *testing.T) {
	store := NewMemoryKV()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(ctx, "shared", "x")
		}()
		go func() {
			defer wg.Done()
			store.Get(ctx, "shared")
		}()
	}
	wg.Wait()
}

func TestNewKVStoreFallsBackToMemory(t *testing.T) {
	store := NewKVStore(nil)

	if _, ok := store.(*MemoryKV); !ok {
		t.Errorf("NewKVStore(nil) = %T, want *MemoryKV", store)
	}
}
