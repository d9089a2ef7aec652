package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "settings [dir]",
		Short: "Initialize the build tree and print the settings of every build",
		Long: `Initialize the build tree rooted at dir (default: the current directory) and
print, for every build, its root project, projects and effective build cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts := c.opts
			opts.Format = format
			return c.app.Settings(cmd.Context(), dir, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", app.FormatText, "Report format: text or yaml")
	return cmd
}
