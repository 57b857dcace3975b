package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-storelog/logger"
)

func newLogCmd(opts *options) *cobra.Command {
	var severity string

	cmd := &cobra.Command{
		Use:   "log MESSAGE...",
		Short: "Log messages and print the retained lines",
		Long: `Log each MESSAGE at the given severity, then print the most recent
retained lines. Messages below the --level threshold are dropped.`,
		Example: `  storelog log "service started"
  storelog log -s alert --level error "disk failure"
  storelog log --file app.log --file-logging -s warning "low memory"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseSeverity(severity)
			if err != nil {
				return fmt.Errorf("invalid --severity: %w", err)
			}
			log, err := opts.newLogger()
			if err != nil {
				return err
			}

			for _, msg := range args {
				if err := log.Log(level, msg); err != nil {
					return err
				}
			}

			opts.finish(log, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&severity, "severity", "s", "info", "severity of the messages: alert, error, warning, info")
	return cmd
}
