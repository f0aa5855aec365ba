package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yourusername/tigview/internal/app"
	"github.com/yourusername/tigview/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logFile string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "tigview [path]",
		Short: "A terminal commit-graph browser",
		Long: `tigview renders a repository's commit history as a railroad-style
graph in the terminal, with per-commit expand to inspect changed files
and diffs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startupLog := newStartupLogger(logFile, logLevel)

			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				startupLog.Error("failed to load config", "err", err)
				return fmt.Errorf("loading config: %w", err)
			}

			model, err := app.New(cfg, repoPath)
			if err != nil {
				startupLog.Error("failed to open repository", "path", repoPath, "err", err)
				return fmt.Errorf("opening repository %q: %w", repoPath, err)
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				startupLog.Error("program exited with error", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write startup diagnostics to this file (disabled by default)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level when --log-file is set (debug, info, warn, error)")

	cmd.AddCommand(newTestGraphCmd())

	return cmd
}

// newStartupLogger builds a charmbracelet/log logger scoped to the brief
// window before the bubbletea program takes over the terminal. Once the
// alt-screen program is running, stderr output would corrupt the display,
// so this logger is used only before p.Run() starts and after it returns.
func newStartupLogger(logFile, levelStr string) *log.Logger {
	if logFile == "" {
		return log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.FatalLevel,
			ReportTimestamp: false,
		})
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel})
	}

	level := log.InfoLevel
	switch levelStr {
	case "debug":
		level = log.DebugLevel
	case "warn", "warning":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	return log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "tigview",
		ReportTimestamp: true,
	})
}
