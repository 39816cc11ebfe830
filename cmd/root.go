package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/CalcPad/internal/app"
	"github.com/Rorical/CalcPad/internal/config"
	"github.com/Rorical/CalcPad/internal/logging"
)

var (
	logFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "calcpad",
	Short: "A button-driven terminal calculator",
	Long:  `CalcPad is a terminal calculator operated by pressing on-screen buttons with the arrow keys or the mouse.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runApplication(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func runApplication() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Stop()

	return application.Start()
}

// tuiLogger writes to --log-file, or nowhere: the TUI owns the terminal
func tuiLogger() (*slog.Logger, func() error, error) {
	if logFile == "" {
		return logging.NewNop(), func() error { return nil }, nil
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFile(logFile, level)
}

func stderrLogger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewStderr(level), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(themeCmd)
}
