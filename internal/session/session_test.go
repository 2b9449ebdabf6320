package session

import (
	"testing"
	"time"
)

func TestCreateAndGet(t *testing.T) {
	s := NewStore(time.Hour)

	token := s.Create(42)
	if token == "" {
		t.Fatal("empty token")
	}
	userID, ok := s.Get(token)
	if !ok || userID != 42 {
		t.Fatalf("Get = (%d, %v), want (42, true)", userID, ok)
	}

	other := s.Create(42)
	if other == token {
		t.Error("tokens must be unique per session")
	}
}

func TestGetUnknownToken(t *testing.T) {
	s := NewStore(time.Hour)
	if _, ok := s.Get("nope"); ok {
		t.Error("unknown token resolved")
	}
}

func TestExpiry(t *testing.T) {
	s := NewStore(time.Hour)
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	s.SetNowFunc(func() time.Time { return now })

	token := s.Create(7)
	if _, ok := s.Get(token); !ok {
		t.Fatal("fresh token should resolve")
	}

	now = now.Add(time.Hour + time.Minute)
	if _, ok := s.Get(token); ok {
		t.Error("expired token resolved")
	}
	// Expired entries are dropped, not just hidden.
	now = now.Add(-2 * time.Hour)
	if _, ok := s.Get(token); ok {
		t.Error("expired token resurrected after clock rewind")
	}
}

func TestDelete(t *testing.T) {
	s := NewStore(time.Hour)
	token := s.Create(1)
	s.Delete(token)
	if _, ok := s.Get(token); ok {
		t.Error("deleted token resolved")
	}
	s.Delete("unknown") // no-op
}
