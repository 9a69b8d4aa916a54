// Package commands implements the count-pdfs command line.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Midhun-Kanadan/pdf-status/internal/app"
	"github.com/Midhun-Kanadan/pdf-status/internal/build"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for count-pdfs.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Count(ctx context.Context, opts app.CountOptions) (app.CountResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "count-pdfs",
		Short:         "Count corpus documents and citation entries, updating the snapshot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			_, err := c.app.Count(cmd.Context(), app.CountOptions{
				ConfigPath: configPath,
				NoCache:    noCache,
			})
			return err
		},
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

	rootCmd.Flags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.Flags().BoolP("no-cache", "n", false, "Re-parse every citation file, ignoring cached counts")

	c.rootCmd = rootCmd
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
