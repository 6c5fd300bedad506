package store

import "testing"

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore[string]()

	s.Set("dashboard:42", "payload")

	got, ok := s.Get("dashboard:42")
	if !ok {
		t.Fatalf("expected to find stored value")
	}
	if got != "payload" {
		t.Fatalf("unexpected value %s", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", s.Len())
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore[int]()
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing key to return false")
	}
}

func TestMemoryStoreSetReplacesValue(t *testing.T) {
	s := NewMemoryStore[string]()
	s.Set("k", "old")

	s.Set("k", "new")

	got, _ := s.Get("k")
	if got != "new" {
		t.Fatalf("expected replacement to win, got %s", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore[string]()
	s.Set("k", "v")

	s.Delete("k")

	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected key to be removed")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", s.Len())
	}
}
