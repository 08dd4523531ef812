package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wanipop/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   "config",
		Short: "Show or change the settings",
	}
	configCommand.AddCommand(
		newConfigShowCommand(),
		newConfigPathCommand(),
		newConfigSetAPIKeyCommand(),
		newConfigSetBatchSizeCommand(),
		newConfigSetIntervalCommand(),
		newConfigSetHideDecorationsCommand(),
	)
	return configCommand
}

func newConfigShowCommand() *cobra.Command {
	format := outputFormatJSON
	var showAPIKey bool
	command := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			settings := store.Snapshot()
			if !showAPIKey {
				settings = settings.Masked()
			}
			return format.write(cmd.OutOrStdout(), settings)
		},
	}
	command.Flags().VarP(&format, "output", "o", "output format: json or yaml")
	command.Flags().BoolVar(&showAPIKey, "show-api-key", false, "print the API key without masking it")
	return command
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return err
		},
	}
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return newConfigSetCommand("set-api-key <key>", "Set the WaniKani API token", func(store *config.Store, value string) error {
		return store.SetAPIKey(value)
	})
}

func newConfigSetBatchSizeCommand() *cobra.Command {
	return newConfigSetCommand("set-batch-size <number>", "Set the number of reviews per batch", func(store *config.Store, value string) error {
		number, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("batch size must be a number: %w", err)
		}
		return store.SetNumOfReviewsPerBatch(number)
	})
}

func newConfigSetIntervalCommand() *cobra.Command {
	return newConfigSetCommand("set-interval <minutes>", "Set the minutes between review checks", func(store *config.Store, value string) error {
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("interval must be a number of minutes: %w", err)
		}
		return store.SetTimeBetweenPopupsInMinutes(minutes)
	})
}

func newConfigSetHideDecorationsCommand() *cobra.Command {
	return newConfigSetCommand("set-hide-decorations <true|false>", "Hide the window decorations of the desktop UI", func(store *config.Store, value string) error {
		hide, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value must be true or false: %w", err)
		}
		return store.SetHideWindowDecorations(hide)
	})
}

func newConfigSetCommand(use, short string, set func(store *config.Store, value string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			if err := set(store, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", store.Path())
			return err
		},
	}
}
