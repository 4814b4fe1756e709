package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/ui"
)

func newSignupCmd() *cobra.Command {
	var firstName string
	var lastName string
	var password string

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create a new account and log in",
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

			u, err := app.auth.Register(ctx, firstName, lastName, args[0], password)
			if err != nil {
				return err
			}
			if err := app.auth.SaveCurrentUser(ctx, *u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconSparkle+" Account created"),
				ui.Muted.Render(fmt.Sprintf("Welcome to LifePilot, %s!", u.FirstName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first", "", "First name")
	cmd.Flags().StringVar(&lastName, "last", "", "Last name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newForgotPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset",
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

			if err := app.auth.ForgotPassword(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("If this were a real app, reset instructions would be on their way."))
			return nil
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Reset a password with a reset token",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("token is required")
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

			if err := app.auth.ResetPassword(ctx, args[0], password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Password reset successful"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
