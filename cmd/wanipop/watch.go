package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wanipop/internal/bootstrap"
	"github.com/at-ishikawa/wanipop/internal/cli"
	"github.com/at-ishikawa/wanipop/internal/scheduler"
)

func newWatchCommand() *cobra.Command {
	var now bool
	command := &cobra.Command{
		Use:   "watch",
		Short: "Start a review session every configured interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			service, closeService := newReviewService(store)
			defer closeService()

			out := cmd.OutOrStdout()
			notifier := scheduler.NotifierFunc(func(message string) {
				_, _ = color.New(color.FgYellow).Fprintln(out, message)
			})
			job := scheduler.NewReviewJob(service, func(ctx context.Context) error {
				return cli.NewInteractiveReviewCLI(service, os.Stdin, out).Run(ctx)
			}, notifier)

			interval := store.Snapshot().TimeBetweenPopups()
			reviewScheduler, err := scheduler.New(interval, job)
			if err != nil {
				return fmt.Errorf("scheduler.New > %w", err)
			}

			app := bootstrap.New()
			app.AddShutdownHook("scheduler", reviewScheduler.Stop)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				if err := reviewScheduler.Start(ctx); err != nil {
					return fmt.Errorf("reviewScheduler.Start > %w", err)
				}
				_, _ = fmt.Fprintf(out, "Checking for reviews every %s. Press Ctrl+C to stop.\n", interval)
				if now {
					if err := job.Run(ctx); err != nil {
						slog.Default().Error("review check failed", "error", err)
					}
				}
				<-ctx.Done()
				return nil
			})
		},
	}
	command.Flags().BoolVar(&now, "now", false, "check for reviews once before waiting for the first interval")
	return command
}
