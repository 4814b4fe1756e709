package journal

import (
	"fmt"
	"strings"
	"time"
)

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodContent  Mood = "content"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodContent, MoodNeutral, MoodSad, MoodStressed:
		return true
	default:
		return false
	}
}

func ParseMood(input string) (Mood, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", nil
	}
	m := Mood(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood: %q", input)
	}
	return m, nil
}

// Entry is a single journal record. CreatedAt is immutable; UpdatedAt is
// bumped on every update.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tags      []string  `json:"tags,omitempty"`
}

// Fields are the caller-supplied parts of a new entry. ID and both
// timestamps are assigned by the store.
type Fields struct {
	Title   string
	Content string
	Mood    Mood
	Tags    []string
}

// Patch updates individual fields of an existing entry; nil fields are
// left untouched.
type Patch struct {
	Title   *string
	Content *string
	Mood    *Mood
	Tags    []string
}

func (p Patch) apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), p.Tags...)
	}
}
