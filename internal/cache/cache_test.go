package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for absent key")
	}
	c.Set("k", 42)
	got, ok := c.Get("k")
	if !ok || got.(int) != 42 {
		t.Fatalf("expected hit with 42, got (%v,%v)", got, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if c.Len() != 1 {
		t.Fatalf("expected expired entry to remain until cleanup")
	}
	c.Cleanup()
	if c.Len() != 0 {
		t.Fatalf("expected cleanup to drop expired entry")
	}
}

func TestInvalidateAndClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected invalidated key to miss")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear")
	}
}
