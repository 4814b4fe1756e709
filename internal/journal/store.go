package journal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/notify"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
)

const journalKey = "lifepilot_journal"

// Store owns the ordered journal collection. It mirrors the task store:
// full-snapshot persistence after every mutation, no persistence until the
// initial load has completed.
type Store struct {
	kv      *storage.Store
	notify  notify.Notifier
	entries []Entry
	loaded  bool
}

func NewStore(kv *storage.Store, n notify.Notifier) *Store {
	if n == nil {
		n = notify.Discard{}
	}
	return &Store{kv: kv, notify: n}
}

// Load reads the persisted collection, seeding the samples when nothing
// usable is stored.
func (s *Store) Load(ctx context.Context) error {
	entries, ok, err := storage.Load[[]Entry](ctx, s.kv, journalKey)
	if err != nil {
		return err
	}
	if !ok {
		entries = sampleEntries(time.Now())
		if err := storage.Set(ctx, s.kv, journalKey, entries); err != nil {
			return err
		}
	}
	s.entries = entries
	s.loaded = true
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	return storage.Set(ctx, s.kv, journalKey, s.entries)
}

// Add appends a new entry with a generated id; CreatedAt and UpdatedAt are
// both set to now.
func (s *Store) Add(ctx context.Context, f Fields) (Entry, error) {
	now := time.Now()
	e := Entry{
		ID:        uuid.NewString(),
		Title:     f.Title,
		Content:   f.Content,
		Mood:      f.Mood,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      f.Tags,
	}
	s.entries = append(s.entries, e)
	if err := s.persist(ctx); err != nil {
		return Entry{}, err
	}
	s.notify.Toast("Journal entry saved", "Your thoughts have been captured successfully.")
	return e, nil
}

// Update patches the matching entry and bumps UpdatedAt. applied is false
// when no entry has the given id.
func (s *Store) Update(ctx context.Context, id string, p Patch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	p.apply(&s.entries[i])
	s.entries[i].UpdatedAt = time.Now()
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notify.Toast("Entry updated", "Your journal entry has been updated.")
	return true, nil
}

// Delete removes the matching entry. applied is false when no entry has
// the given id.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notify.Toast("Entry deleted", "Your journal entry has been deleted.")
	return true, nil
}

// Entries returns the collection in insertion order.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// EntryByID returns the entry with the given id.
func (s *Store) EntryByID(id string) (Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i], true
}

// EntriesByDate returns entries created on the same calendar day as the
// given date, local time, time-of-day ignored on both sides.
func (s *Store) EntriesByDate(date time.Time) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if sameDay(e.CreatedAt, date) {
			out = append(out, e)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func (s *Store) index(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
