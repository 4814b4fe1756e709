package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fixture struct {
	Name string    `json:"name"`
	When time.Time `json:"when"`
}

func TestGetReturnsDefaultWhenAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	def := []string{"a", "b"}
	got, err := Get(ctx, s, "missing", def)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Get=%v, want default %v", got, def)
	}

	// The default must not be written back.
	if _, ok, _ := s.GetRaw(ctx, "missing"); ok {
		t.Fatalf("default was persisted")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	in := fixture{Name: "pi day", When: when}
	if err := Set(ctx, s, "fixture", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, ok, err := Load[fixture](ctx, s, "fixture")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("Load ok=false, want true")
	}
	if out.Name != in.Name {
		t.Fatalf("name=%q, want %q", out.Name, in.Name)
	}
	if !out.When.Equal(in.When) {
		t.Fatalf("when=%v, want %v", out.When, in.When)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Set(ctx, s, "k", 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(ctx, s, "k", 2); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	got, err := Get(ctx, s, "k", 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 2 {
		t.Fatalf("Get=%d, want 2", got)
	}
}

func TestCorruptValueIsDeletedAndDefaulted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetRaw(ctx, "broken", "{not json at all"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}

	got, err := Get(ctx, s, "broken", "fallback")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "fallback" {
		t.Fatalf("Get=%q, want fallback", got)
	}
	if s.ResetCount() != 1 {
		t.Fatalf("ResetCount=%d, want 1", s.ResetCount())
	}
	if _, ok, _ := s.GetRaw(ctx, "broken"); ok {
		t.Fatalf("corrupt entry was not deleted")
	}
}

func TestRemoveAbsentKeyIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove(context.Background(), "never-set"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}
