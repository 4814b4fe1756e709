package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/task"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskListCmd(),
		newTaskTodayCmd(),
		newTaskRoutinesCmd(),
		newTaskDoneCmd(),
		newTaskEditCmd(),
		newTaskRmCmd(),
	)
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var description string
	var due string
	var priority string
	var category string
	var tags []string
	var routine bool
	var frequency string
	var days []int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task add"); err != nil {
				return err
			}

			prio, err := task.ParsePriority(priority)
			if err != nil {
				return err
			}
			fields := task.Fields{
				Title:       strings.TrimSpace(args[0]),
				Description: description,
				Priority:    prio,
				Category:    category,
				Tags:        tags,
				IsRoutine:   routine,
			}
			if due != "" {
				d, err := parseDate(due)
				if err != nil {
					return err
				}
				fields.DueDate = &d
			}
			if routine {
				freq, err := task.ParseFrequency(frequency)
				if err != nil {
					return err
				}
				fields.RoutineFrequency = freq
				for _, d := range days {
					if d < 0 || d > 6 {
						return fmt.Errorf("invalid weekday %d (0=Sunday … 6=Saturday)", d)
					}
					fields.RoutineDays = append(fields.RoutineDays, time.Weekday(d))
				}
			}

			added, err := app.tasks.Add(ctx, fields)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Id", ui.Muted.Render(added.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&priority, "priority", "P", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "Personal", "Category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags (comma separated)")
	cmd.Flags().BoolVar(&routine, "routine", false, "Create a recurring routine")
	cmd.Flags().StringVar(&frequency, "frequency", "daily", "Routine frequency (daily|weekly|monthly|custom)")
	cmd.Flags().IntSliceVar(&days, "days", nil, "Weekdays for weekly routines (0=Sunday … 6=Saturday)")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var category string
	var routines bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task list"); err != nil {
				return err
			}

			tasks := app.tasks.Tasks()
			if category != "" {
				tasks = app.tasks.TasksByCategory(category)
			}
			if routines {
				tasks = filterRoutine(tasks)
			}
			printTasks(cmd, tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only tasks in this category (exact match)")
	cmd.Flags().BoolVar(&routines, "routines", false, "Only routine tasks")

	return cmd
}

func newTaskTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show tasks scheduled for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task today"); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Today — "+time.Now().Format("Mon Jan 2")))
			printTasks(cmd, app.tasks.TodaysTasks())
			return nil
		},
	}
}

func newTaskRoutinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routines",
		Short: "Show all routine tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task routines"); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconRoutine, "Routines"))
			printTasks(cmd, app.tasks.RoutineTasks())
			return nil
		},
	}
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task done"); err != nil {
				return err
			}

			id, err := resolveTaskID(app.tasks, args[0])
			if err != nil {
				return err
			}
			applied, err := app.tasks.Complete(ctx, id)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("no task with id %s", args[0])
			}
			return nil
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	var title string
	var description string
	var due string
	var clearDue bool
	var priority string
	var category string
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task edit"); err != nil {
				return err
			}

			var patch task.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if clearDue {
				patch.ClearDueDate = true
			} else if cmd.Flags().Changed("due") {
				d, err := parseDate(due)
				if err != nil {
					return err
				}
				patch.DueDate = &d
			}
			if cmd.Flags().Changed("priority") {
				prio, err := task.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &prio
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = tags
			}

			id, err := resolveTaskID(app.tasks, args[0])
			if err != nil {
				return err
			}
			applied, err := app.tasks.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("no task with id %s", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().StringVarP(&priority, "priority", "P", "", "New priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replacement tags")

	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "task rm"); err != nil {
				return err
			}

			id, err := resolveTaskID(app.tasks, args[0])
			if err != nil {
				return err
			}
			applied, err := app.tasks.Delete(ctx, id)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("no task with id %s", args[0])
			}
			return nil
		},
	}
}

// resolveTaskID accepts a full id or a unique id prefix.
func resolveTaskID(store *task.Store, arg string) (string, error) {
	var match string
	for _, t := range store.Tasks() {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return arg, nil
	}
	return match, nil
}

func printTasks(cmd *cobra.Command, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks)"))
		return
	}
	for _, t := range tasks {
		kind := ""
		if t.IsRoutine {
			kind = ui.IconRoutine + " "
		}
		due := ""
		if t.DueDate != nil {
			due = ui.Muted.Render(" due " + t.DueDate.Format("2006-01-02"))
		}
		line := fmt.Sprintf("%s %s%s %s [%s]%s %s",
			ui.CheckBox(t.Completed), kind, t.Title,
			ui.PriorityText(string(t.Priority)), t.Category, due,
			ui.Muted.Render(shortID(t.ID)))
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

func filterRoutine(tasks []task.Task) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if t.IsRoutine {
			out = append(out, t)
		}
	}
	return out
}
