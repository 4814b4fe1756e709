package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
)

func newTestKV(t *testing.T) *storage.Store {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	kv := newTestKV(t)
	s := NewStore(kv, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load journal: %v", err)
	}
	return s, kv
}

func TestLoadSeedsSamples(t *testing.T) {
	s, _ := newTestStore(t)
	if got := len(s.Entries()); got != 2 {
		t.Fatalf("seeded %d entries, want 2", got)
	}
}

func TestAddSetsBothTimestamps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, Fields{Title: "Evening notes", Content: "Quiet day.", Mood: MoodContent})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("entry has empty id")
	}
	if !e.CreatedAt.Equal(e.UpdatedAt) {
		t.Fatalf("createdAt=%v updatedAt=%v, want equal on add", e.CreatedAt, e.UpdatedAt)
	}
}

func TestUpdateBumpsUpdatedAtOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, Fields{Title: "Draft", Content: "v1"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	content := "v2"
	applied, err := s.Update(ctx, e.ID, Patch{Content: &content})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !applied {
		t.Fatalf("Update applied=false")
	}

	got, ok := s.EntryByID(e.ID)
	if !ok {
		t.Fatalf("entry disappeared")
	}
	if got.Content != "v2" {
		t.Fatalf("content=%q, want v2", got.Content)
	}
	if got.Title != "Draft" {
		t.Fatalf("title changed: %q", got.Title)
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Fatalf("createdAt mutated by update")
	}
	if !got.UpdatedAt.After(e.UpdatedAt) {
		t.Fatalf("updatedAt not bumped: %v <= %v", got.UpdatedAt, e.UpdatedAt)
	}
}

func TestUpdateUnknownIDIsNotApplied(t *testing.T) {
	s, _ := newTestStore(t)
	title := "X"
	if applied, err := s.Update(context.Background(), "nope", Patch{Title: &title}); err != nil || applied {
		t.Fatalf("Update unknown=(%v, %v), want (false, nil)", applied, err)
	}
}

func TestDeleteEntry(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := len(s.Entries())

	e, err := s.Add(ctx, Fields{Title: "Temp", Content: "gone soon"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if applied, err := s.Delete(ctx, e.ID); err != nil || !applied {
		t.Fatalf("Delete=(%v, %v)", applied, err)
	}
	if len(s.Entries()) != before {
		t.Fatalf("len=%d, want %d", len(s.Entries()), before)
	}
	if _, ok := s.EntryByID(e.ID); ok {
		t.Fatalf("deleted entry still found")
	}
	if applied, _ := s.Delete(ctx, e.ID); applied {
		t.Fatalf("deleting twice reported applied")
	}
}

func TestEntriesByDateIgnoresTimeOfDay(t *testing.T) {
	s, _ := newTestStore(t)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	// The samples put one entry yesterday and one today.
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 1, 0, time.Local)
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.Local)

	for _, query := range []time.Time{startOfToday, endOfToday} {
		got := s.EntriesByDate(query)
		if len(got) != 1 {
			t.Fatalf("EntriesByDate(%v) len=%d, want 1", query, len(got))
		}
		if got[0].Title != "Planning for the week ahead" {
			t.Fatalf("EntriesByDate(%v) returned %q", query, got[0].Title)
		}
	}

	gotYesterday := s.EntriesByDate(yesterday)
	if len(gotYesterday) != 1 || gotYesterday[0].Title != "My first journal entry" {
		t.Fatalf("EntriesByDate(yesterday)=%v", gotYesterday)
	}

	if got := s.EntriesByDate(now.AddDate(0, 0, 7)); len(got) != 0 {
		t.Fatalf("EntriesByDate(next week) len=%d, want 0", len(got))
	}
}

func TestRoundTripPreservesTimestamps(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, Fields{Title: "Persisted", Content: "body", Mood: MoodStressed, Tags: []string{"test"}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	s2 := NewStore(kv, nil)
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := s2.EntryByID(e.ID)
	if !ok {
		t.Fatalf("entry missing after reload")
	}
	if !got.CreatedAt.Equal(e.CreatedAt) || !got.UpdatedAt.Equal(e.UpdatedAt) {
		t.Fatalf("timestamps drifted: %+v vs %+v", got, e)
	}
	if got.Mood != MoodStressed {
		t.Fatalf("mood=%q, want stressed", got.Mood)
	}
}

func TestCorruptSnapshotFallsBackToSamples(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.SetRaw(ctx, "lifepilot_journal", "not even json"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}

	s := NewStore(kv, nil)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load over corrupt snapshot: %v", err)
	}
	if got := len(s.Entries()); got != 2 {
		t.Fatalf("loaded %d entries after corruption, want 2 samples", got)
	}
	if kv.ResetCount() != 1 {
		t.Fatalf("ResetCount=%d, want 1", kv.ResetCount())
	}
}

func TestParseMood(t *testing.T) {
	if m, err := ParseMood(" Happy "); err != nil || m != MoodHappy {
		t.Fatalf("ParseMood(Happy)=(%q, %v)", m, err)
	}
	if m, err := ParseMood(""); err != nil || m != "" {
		t.Fatalf("ParseMood empty=(%q, %v), want no mood", m, err)
	}
	if _, err := ParseMood("ecstatic"); err == nil {
		t.Fatalf("ParseMood accepted unknown mood")
	}
}
