package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/notify"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
)

const tasksKey = "lifepilot_tasks"

// Store owns the ordered task collection. Every mutation rewrites the full
// snapshot; mutations before Load completes are applied in memory only so
// an unloaded store can never clobber the persisted collection.
type Store struct {
	kv     *storage.Store
	notify notify.Notifier
	tasks  []Task
	loaded bool
}

func NewStore(kv *storage.Store, n notify.Notifier) *Store {
	if n == nil {
		n = notify.Discard{}
	}
	return &Store{kv: kv, notify: n}
}

// Load reads the persisted collection. A missing or corrupt snapshot falls
// back to the sample tasks, which are persisted immediately.
func (s *Store) Load(ctx context.Context) error {
	tasks, ok, err := storage.Load[[]Task](ctx, s.kv, tasksKey)
	if err != nil {
		return err
	}
	if !ok {
		tasks = sampleTasks(time.Now())
		if err := storage.Set(ctx, s.kv, tasksKey, tasks); err != nil {
			return err
		}
	}
	s.tasks = tasks
	s.loaded = true
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	return storage.Set(ctx, s.kv, tasksKey, s.tasks)
}

// Add appends a new task with a generated id and CreatedAt of now.
func (s *Store) Add(ctx context.Context, f Fields) (Task, error) {
	t := Task{
		ID:               uuid.NewString(),
		Title:            f.Title,
		Description:      f.Description,
		DueDate:          f.DueDate,
		Completed:        f.Completed,
		CreatedAt:        time.Now(),
		Priority:         f.Priority,
		Category:         f.Category,
		Tags:             f.Tags,
		IsRoutine:        f.IsRoutine,
		RoutineFrequency: f.RoutineFrequency,
		RoutineDays:      f.RoutineDays,
	}
	s.tasks = append(s.tasks, t)
	if err := s.persist(ctx); err != nil {
		return Task{}, err
	}
	s.notify.Toast("Task created", fmt.Sprintf("%s has been added to your tasks.", t.Title))
	return t, nil
}

// Update patches the matching task in place. applied is false when no task
// has the given id.
func (s *Store) Update(ctx context.Context, id string, p Patch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	p.apply(&s.tasks[i])
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notify.Toast("Task updated", "Your task has been updated successfully.")
	return true, nil
}

// Delete removes the matching task. applied is false when no task has the
// given id.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notify.Toast("Task deleted", "Your task has been deleted.")
	return true, nil
}

// Complete marks the matching task done. Completion is one-way; there is
// no uncomplete operation.
func (s *Store) Complete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i].Completed = true
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.notify.Toast("Task completed", "Great job completing your task!")
	return true, nil
}

// Tasks returns the collection in insertion order.
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// TodaysTasks returns the tasks scheduled for the current calendar day.
func (s *Store) TodaysTasks() []Task {
	return s.TasksForDay(time.Now())
}

// TasksForDay returns daily routines, weekly routines scheduled on the
// day's weekday, and tasks due on that calendar day. Completed tasks are
// not filtered out; callers that want only open tasks filter themselves.
func (s *Store) TasksForDay(day time.Time) []Task {
	var out []Task
	for _, t := range s.tasks {
		if scheduledOn(t, day) {
			out = append(out, t)
		}
	}
	return out
}

// TasksByCategory matches the category string exactly, case included.
func (s *Store) TasksByCategory(category string) []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// RoutineTasks returns all routine tasks regardless of frequency.
func (s *Store) RoutineTasks() []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.IsRoutine {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func scheduledOn(t Task, day time.Time) bool {
	if t.IsRoutine {
		switch t.RoutineFrequency {
		case FrequencyDaily:
			return true
		case FrequencyWeekly:
			for _, wd := range t.RoutineDays {
				if wd == day.Weekday() {
					return true
				}
			}
		}
	}
	return t.DueDate != nil && sameDay(*t.DueDate, day)
}

// sameDay reports calendar-day equality in local time, ignoring the
// time-of-day component of both values.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
