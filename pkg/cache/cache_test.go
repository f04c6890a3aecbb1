package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRU(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRU[string, int], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				if v, ok := c.Get("a"); !ok || v != 1 {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || v != 1 {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != 3 {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				time.Sleep(time.Millisecond * 30)
				c.Set("a", 2)
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || v != 2 {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be deleted")
				}
				if c.Len() != 0 {
					t.Errorf("expected empty cache, got len=%d", c.Len())
				}
			},
		},
		{
			name:     "delete func removes matching entries",
			capacity: 3,
			ttl:      time.Second,
			actions: func(c *LRU[string, int], t *testing.T) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Set("c", 3)
				removed := c.DeleteFunc(func(_ string, v int) bool { return v%2 == 1 })
				if removed != 2 {
					t.Errorf("expected 2 removed entries, got %d", removed)
				}
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be deleted")
				}
				if v, ok := c.Get("b"); !ok || v != 2 {
					t.Errorf("expected b=2, got %v", v)
				}
				if c.Len() != 1 {
					t.Errorf("expected len=1, got %d", c.Len())
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRU[string, int], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				if err := c.Start(ctx); err != nil {
					t.Fatalf("unexpected start error: %v", err)
				}

				c.Set("a", 1)
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if c.Len() != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRU[string, int](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
