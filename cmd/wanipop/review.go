package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wanipop/internal/cli"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/scheduler"
)

func newUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the WaniKani user of the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			service, closeService := newReviewService(store)
			defer closeService()

			user, err := service.FetchUser(cmd.Context())
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			out := cmd.OutOrStdout()
			_, _ = bold.Fprintln(out, user.Username)
			_, _ = fmt.Fprintf(out, "Level: %d\n", user.Level)
			_, _ = fmt.Fprintf(out, "Subscription: %s (active: %t, max level: %d)\n",
				user.Subscription.Type, user.Subscription.Active, user.Subscription.MaxLevelGranted)
			_, _ = fmt.Fprintf(out, "Profile: %s\n", user.ProfileURL)
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether any reviews are available now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			service, closeService := newReviewService(store)
			defer closeService()

			available, err := service.CheckForReviews(cmd.Context())
			if err != nil {
				return err
			}
			if !available {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), scheduler.AllCaughtUpMessage)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Reviews are available.")
			return err
		},
	}
}

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review a batch of the available reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			service, closeService := newReviewService(store)
			defer closeService()

			err = cli.NewInteractiveReviewCLI(service, os.Stdin, cmd.OutOrStdout()).Run(cmd.Context())
			if errors.Is(err, review.ErrNoReviewsAvailable) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), scheduler.AllCaughtUpMessage)
				return err
			}
			return err
		},
	}
}
