package store

import (
	"context"
	"testing"
	"time"

	"github.com/runehealth/rune_backend/internal/intake"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := &intake.Session{ID: "abc", Record: intake.PatientRecord{Name: "Jane Doe"}}
	if err := s.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Record.Name != "Jane Doe" {
		t.Errorf("got name %q, want Jane Doe", got.Record.Name)
	}

	// Mutating the returned copy must not leak back into the store.
	got.Record.Name = "changed"
	again, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Record.Name != "Jane Doe" {
		t.Errorf("store entry mutated through returned copy")
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	if _, err := s.Get(context.Background(), "nope"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ms := NewMemoryStore(time.Minute).(*memoryStore)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	ctx := context.Background()
	if err := ms.Put(ctx, &intake.Session{ID: "abc"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := ms.Get(ctx, "abc"); err != ErrNotFound {
		t.Errorf("expired session: got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	if err := s.Put(ctx, &intake.Session{ID: "abc"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "abc"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	// Double delete is fine.
	if err := s.Delete(ctx, "abc"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
