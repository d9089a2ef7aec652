// Package commands implements the CLI commands for the weave build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/build"
	"go.trai.ch/weave/internal/core/domain"
)

// CLI represents the command line interface for weave.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	// opts holds the tree-wide options shared by every command.
	opts app.SettingsOptions
}

// Application represents the application logic interface.
type Application interface {
	Settings(ctx context.Context, dir string, opts app.SettingsOptions, out io.Writer) error
}

const rootLong = `weave initializes build trees.

A build tree is a root build and the builds it includes. Each build directory
may carry a ` + "`weave.settings.yaml`" + ` declaring its projects, included builds and
build cache. Included builds always use the root build's cache configuration.

Values in settings files may reference project properties as ${key}; set them
with -P key=value.`

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "weave",
		Short:         "Initialize and inspect build trees",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&c.opts.NoBuildCache, "no-build-cache", false, "Disable the local and remote build cache")
	flags.BoolVar(&c.opts.Offline, "offline", false, "Disable the remote build cache")
	flags.StringArrayVarP(&c.opts.Properties, "property", "P", nil, "Set a project property referenced as ${key} (key=value)")
	flags.IntVar(&c.opts.Parallel, "parallel", 0, "Maximum number of included builds processed at once (default: number of CPUs)")
	flags.BoolVar(&c.opts.JSONLogs, "json", false, "Write logs as JSON (same as "+domain.LogFormatEnv+"=json)")
	flags.StringVar(&c.opts.MetricsOut, "metrics-out", "", "Write Prometheus metrics to this file")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
