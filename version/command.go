package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/duckurl/cliout"
)

// NewCommand creates a version command. outputFormat points at the root
// command's --output flag; nil means default output.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cliout.FormatDefault
			if outputFormat != nil {
				f, err := cliout.ParseFormat(*outputFormat)
				if err != nil {
					return err
				}
				format = f
			}
			p := cliout.NewPrinter(format, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if p.IsJSON() {
				return p.PrintJSON(info)
			}

			if quiet {
				_, err := fmt.Fprintln(p.Out, info.Version)
				return err
			}

			p.Header(fmt.Sprintf("%s Version", info.Name))
			p.Label("Version", info.Version)
			p.Label("Build Date", info.BuildDate)
			p.Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
