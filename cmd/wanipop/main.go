package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/at-ishikawa/wanipop/internal/wanikani/apiv2"
)

var (
	configFile string
	apiBaseURL string
	logRotator *lumberjack.Logger
)

func main() {
	// .env is optional, for WANIPOP_CONFIG during development
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		closeLogger()
		os.Exit(1)
	}
	closeLogger()
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	var logFile string
	rootCommand := &cobra.Command{
		Use:           "wanipop",
		Short:         "Review WaniKani in small batches at regular intervals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode, logFile)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: $"+configEnv+" or the user config directory)")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file, rotated by size")
	rootCommand.PersistentFlags().StringVar(&apiBaseURL, "api-base-url", apiv2.DefaultBaseURL, "WaniKani API base URL")
	_ = rootCommand.PersistentFlags().MarkHidden("api-base-url")

	rootCommand.AddCommand(
		newConfigCommand(),
		newUserCommand(),
		newCheckCommand(),
		newReviewCommand(),
		newWatchCommand(),
		newServeCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr so that stdout only carries command output.
func setupLogger(debugMode bool, logFile string) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	closeLogger()
	var writer io.Writer = os.Stderr
	if logFile != "" {
		logRotator = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, logRotator)
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func closeLogger() {
	if logRotator == nil {
		return
	}
	_ = logRotator.Close()
	logRotator = nil
}
