package lru

import "testing"

func TestCache_GetPut(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Error("Get() on empty cache reported a hit")
	}

	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v, want 2, true", v, ok)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts a

	if _, ok := c.Get("a"); ok {
		t.Error("a survived eviction, want it gone")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("b was evicted, want it kept")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c was evicted, want it kept")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_GetRefreshesRecency(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// Touch a so b becomes the eviction candidate
	c.Get("a")
	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction after a was refreshed")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a was evicted despite being recently used")
	}
}

func TestCache_PutOverwriteRefreshesRecency(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Put("a", 10) // overwrite, no eviction
	if c.Len() != 2 {
		t.Fatalf("Len() after overwrite = %d, want 2", c.Len())
	}
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after overwrite = %d, want 10", v)
	}

	c.Put("c", 3) // b is now least recently used
	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction after a was overwritten")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) hit after Clear()")
	}

	// Cache remains usable after Clear
	c.Put("a", 5)
	if v, ok := c.Get("a"); !ok || v != 5 {
		t.Errorf("Get(a) after reuse = %d, %v, want 5, true", v, ok)
	}
}

func TestCache_MinimumCapacity(t *testing.T) {
	c := New[string, int](0)
	c.Put("a", 1)
	c.Put("b", 2)

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 for clamped capacity", c.Len())
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("most recent entry missing from capacity-1 cache")
	}
}
