package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/journal"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage journal entries",
	}
	cmd.AddCommand(
		newJournalAddCmd(),
		newJournalListCmd(),
		newJournalShowCmd(),
		newJournalEditCmd(),
		newJournalRmCmd(),
	)
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var content string
	var mood string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Write a journal entry",
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
			if _, err := app.requireUser(ctx, "journal add"); err != nil {
				return err
			}

			m, err := journal.ParseMood(mood)
			if err != nil {
				return err
			}
			added, err := app.journal.Add(ctx, journal.Fields{
				Title:   strings.TrimSpace(args[0]),
				Content: content,
				Mood:    m,
				Tags:    tags,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Id", ui.Muted.Render(added.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "m", "", "Entry body")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood (happy|content|neutral|sad|stressed)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags (comma separated)")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			if _, err := app.requireUser(ctx, "journal list"); err != nil {
				return err
			}

			entries := app.journal.Entries()
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				entries = app.journal.EntriesByDate(d)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no entries)"))
				return nil
			}
			for _, e := range entries {
				mood := ""
				if e.Mood != "" {
					mood = " " + ui.MoodText(string(e.Mood))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s%s %s\n",
					ui.IconJournal, e.CreatedAt.Format("2006-01-02"), e.Title, mood,
					ui.Muted.Render(shortID(e.ID)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only entries written on this day (YYYY-MM-DD)")

	return cmd
}

func newJournalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a journal entry",
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
			if _, err := app.requireUser(ctx, "journal show"); err != nil {
				return err
			}

			id, err := resolveEntryID(app.journal, args[0])
			if err != nil {
				return err
			}
			e, ok := app.journal.EntryByID(id)
			if !ok {
				return fmt.Errorf("no entry with id %s", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, e.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Written", e.CreatedAt.Format("2006-01-02 15:04")))
			if !e.UpdatedAt.Equal(e.CreatedAt) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Updated", e.UpdatedAt.Format("2006-01-02 15:04")))
			}
			if e.Mood != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mood", ui.MoodText(string(e.Mood))))
			}
			if len(e.Tags) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tags", strings.Join(e.Tags, ", ")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), e.Content)
			return nil
		},
	}
}

func newJournalEditCmd() *cobra.Command {
	var title string
	var content string
	var mood string
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a journal entry",
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
			if _, err := app.requireUser(ctx, "journal edit"); err != nil {
				return err
			}

			var patch journal.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if cmd.Flags().Changed("mood") {
				m, err := journal.ParseMood(mood)
				if err != nil {
					return err
				}
				patch.Mood = &m
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = tags
			}

			id, err := resolveEntryID(app.journal, args[0])
			if err != nil {
				return err
			}
			applied, err := app.journal.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("no entry with id %s", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "New body")
	cmd.Flags().StringVar(&mood, "mood", "", "New mood")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replacement tags")

	return cmd
}

func newJournalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a journal entry",
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
			if _, err := app.requireUser(ctx, "journal rm"); err != nil {
				return err
			}

			id, err := resolveEntryID(app.journal, args[0])
			if err != nil {
				return err
			}
			applied, err := app.journal.Delete(ctx, id)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("no entry with id %s", args[0])
			}
			return nil
		},
	}
}

// resolveEntryID accepts a full id or a unique id prefix.
func resolveEntryID(store *journal.Store, arg string) (string, error) {
	var match string
	for _, e := range store.Entries() {
		if e.ID == arg {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = e.ID
		}
	}
	if match == "" {
		return arg, nil
	}
	return match, nil
}
