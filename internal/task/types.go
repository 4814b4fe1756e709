package task

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DefaultPriority is used when user input is missing.
const DefaultPriority Priority = PriorityMedium

func ParsePriority(input string) (Priority, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultPriority, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", input)
	}
	return p, nil
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid routine frequency: %q", input)
	}
	return f, nil
}

// Task is a single to-do item. RoutineFrequency and RoutineDays are only
// meaningful while IsRoutine is set; the store does not enforce that.
type Task struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	DueDate          *time.Time     `json:"dueDate,omitempty"`
	Completed        bool           `json:"completed"`
	CreatedAt        time.Time      `json:"createdAt"`
	Priority         Priority       `json:"priority"`
	Category         string         `json:"category"`
	Tags             []string       `json:"tags,omitempty"`
	IsRoutine        bool           `json:"isRoutine,omitempty"`
	RoutineFrequency Frequency      `json:"routineFrequency,omitempty"`
	RoutineDays      []time.Weekday `json:"routineDays,omitempty"`
}

// Fields are the caller-supplied parts of a new task. ID and CreatedAt are
// assigned by the store.
type Fields struct {
	Title            string
	Description      string
	DueDate          *time.Time
	Completed        bool
	Priority         Priority
	Category         string
	Tags             []string
	IsRoutine        bool
	RoutineFrequency Frequency
	RoutineDays      []time.Weekday
}

// Patch updates individual fields of an existing task; nil fields are left
// untouched. CreatedAt is not patchable.
type Patch struct {
	Title            *string
	Description      *string
	DueDate          *time.Time
	ClearDueDate     bool
	Completed        *bool
	Priority         *Priority
	Category         *string
	Tags             []string
	IsRoutine        *bool
	RoutineFrequency *Frequency
	RoutineDays      []time.Weekday
}

func (p Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), p.Tags...)
	}
	if p.IsRoutine != nil {
		t.IsRoutine = *p.IsRoutine
	}
	if p.RoutineFrequency != nil {
		t.RoutineFrequency = *p.RoutineFrequency
	}
	if p.RoutineDays != nil {
		t.RoutineDays = append([]time.Weekday(nil), p.RoutineDays...)
	}
}
