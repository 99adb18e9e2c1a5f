package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get("key")
	if !found {
		t.Fatal("Expected key to be found")
	}
	if string(got) != "value" {
		t.Errorf("Got %q, want %q", got, "value")
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if _, found := c.Get("absent"); found {
		t.Error("Expected miss for absent key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("key", []byte("value"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("key"); found {
		t.Error("Expected entry to expire")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	_ = c.Delete("a")
	if _, found := c.Get("a"); found {
		t.Error("Deleted key still present")
	}

	_ = c.Clear()
	if _, found := c.Get("b"); found {
		t.Error("Cleared key still present")
	}
}
