// Package cli implements the storelog command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-storelog/logger"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	level       string
	store       int
	file        string
	dir         string
	fileLogging bool
	disable     bool
	plain       bool
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "storelog",
		Short: "Leveled logger with drainable line history",
		Long: `storelog logs messages at ALERT, ERROR, WARNING or INFO severity,
filters them by a threshold, optionally appends them to a log file
and prints the most recent retained lines.

The threshold defaults to LOGGER_LEVEL when --level is not given.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.level, "level", "l", "", "accept threshold: alert, error, warning, info (default: LOGGER_LEVEL or info)")
	flags.IntVarP(&opts.store, "store", "n", logger.DefaultStoreLineNumber, "number of recent lines to print; 0 disables retention")
	flags.StringVarP(&opts.file, "file", "f", "", "log file name inside --dir")
	flags.StringVar(&opts.dir, "dir", "", "base directory for the log file (default: system temp dir)")
	flags.BoolVar(&opts.fileLogging, "file-logging", false, "append accepted lines to the log file")
	flags.BoolVar(&opts.disable, "disable", false, "turn every log call into a no-op")
	flags.BoolVar(&opts.plain, "plain", false, "print lines without styling")

	rootCmd.AddCommand(newLogCmd(opts))
	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newLogger builds a Logger from the persistent flags.
func (o *options) newLogger() (*logger.Logger, error) {
	cfg := logger.Config{
		Disabled:        o.disable,
		FileLogging:     o.fileLogging,
		StoreLineNumber: &o.store,
		LogFileName:     o.file,
		BaseDir:         o.dir,
	}
	if o.level != "" {
		level, err := logger.ParseSeverity(o.level)
		if err != nil {
			return nil, fmt.Errorf("invalid --level: %w", err)
		}
		cfg.AcceptLevel = level
	}
	return logger.New(cfg), nil
}

// finish drains log to out and reports the log file location on errOut.
func (o *options) finish(log *logger.Logger, out, errOut io.Writer) {
	printLines(out, log.StoredLines(), o.plain)
	if log.FileLogging() && log.LogFilePath() != "" {
		fmt.Fprintf(errOut, "log file: %s\n", log.LogFilePath())
	}
}
