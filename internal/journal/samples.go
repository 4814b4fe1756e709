package journal

import (
	"time"

	"github.com/google/uuid"
)

// sampleEntries seeds a first run, and a reset after snapshot corruption.
func sampleEntries(now time.Time) []Entry {
	yesterday := now.AddDate(0, 0, -1)

	return []Entry{
		{
			ID:        uuid.NewString(),
			Title:     "My first journal entry",
			Content:   "Today was a productive day. I managed to complete all of my tasks and even had time for a walk in the park. The weather was beautiful and I felt very peaceful.",
			Mood:      MoodHappy,
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
			Tags:      []string{"productive", "peaceful"},
		},
		{
			ID:        uuid.NewString(),
			Title:     "Planning for the week ahead",
			Content:   "I need to focus on the upcoming project deadline. It feels challenging but I think I can manage if I break it down into smaller tasks and focus on one at a time.",
			Mood:      MoodNeutral,
			CreatedAt: now,
			UpdatedAt: now,
			Tags:      []string{"planning", "work"},
		},
	}
}
