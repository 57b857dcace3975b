package cli

import (
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Log one message per severity and print the retained lines",
		Long: `Log "Alert.", "Error.", "Warning." and "Info." at their severities,
then print what the store retained. Try it with --store 3 or --level alert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.newLogger()
			if err != nil {
				return err
			}

			calls := []struct {
				logf func(string) error
				msg  string
			}{
				{log.LogAsAlert, "Alert."},
				{log.LogAsError, "Error."},
				{log.LogAsWarning, "Warning."},
				{log.LogAsInfo, "Info."},
			}
			for _, c := range calls {
				if err := c.logf(c.msg); err != nil {
					return err
				}
			}

			opts.finish(log, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
}
