package task

import (
	"time"

	"github.com/google/uuid"
)

// sampleTasks seeds a first run, and a reset after snapshot corruption.
func sampleTasks(now time.Time) []Task {
	today := now
	tomorrow := now.AddDate(0, 0, 1)

	return []Task{
		{
			ID:          uuid.NewString(),
			Title:       "Complete project proposal",
			Description: "Finish the draft and send for review",
			DueDate:     &today,
			CreatedAt:   now.Add(-2 * time.Hour),
			Priority:    PriorityHigh,
			Category:    "Work",
			Tags:        []string{"project", "urgent"},
		},
		{
			ID:               uuid.NewString(),
			Title:            "Morning meditation",
			Description:      "10 minute mindfulness session",
			CreatedAt:        now.Add(-5 * time.Hour),
			Priority:         PriorityMedium,
			Category:         "Health",
			IsRoutine:        true,
			RoutineFrequency: FrequencyDaily,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Grocery shopping",
			Description: "Buy ingredients for the week",
			DueDate:     &tomorrow,
			CreatedAt:   now.Add(-1 * time.Hour),
			Priority:    PriorityLow,
			Category:    "Personal",
		},
	}
}
