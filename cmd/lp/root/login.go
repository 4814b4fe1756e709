package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in with a registered account",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("email is required")
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

			u, err := app.auth.VerifyCredentials(ctx, args[0], password)
			if err != nil {
				return err
			}
			if err := app.auth.SaveCurrentUser(ctx, *u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconDone+" Login successful"),
				ui.Muted.Render(fmt.Sprintf("Welcome back, %s!", u.FirstName)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.auth.RemoveCurrentUser(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Logged out."))
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := app.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not logged in."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconUser, u.FirstName+" "+u.LastName))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Email", u.Email))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Id", ui.Muted.Render(u.ID)))
			return nil
		},
	}
}
