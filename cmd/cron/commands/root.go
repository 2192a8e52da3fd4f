// Package commands implements the CLI of the nightly cron job.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gimmisn/internal/app"
	"go.trai.ch/gimmisn/internal/build"
	"go.trai.ch/gimmisn/internal/core/domain"
)

// CLI represents the command line interface for cron.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cron",
		Short:         "Nightly refresh of relation artifacts and country-level statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runNightly,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("refcounty", "", "Limit the list of relations to a given refcounty")
	rootCmd.Flags().String("refsettlement", "", "Limit the list of relations to a given refsettlement")
	rootCmd.Flags().Bool("no-update", false, "Don't update existing state of relations")
	rootCmd.Flags().String("mode", string(domain.ModeRelations), "Only perform the given sub-task: all, stats or relations")
	rootCmd.Flags().Bool("no-overpass", false, "Don't query overpass for stats")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runNightly(cmd *cobra.Command, _ []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := domain.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	noUpdate, _ := cmd.Flags().GetBool("no-update")
	noOverpass, _ := cmd.Flags().GetBool("no-overpass")
	refCounty, _ := cmd.Flags().GetString("refcounty")
	refSettlement, _ := cmd.Flags().GetString("refsettlement")

	return c.app.Run(cmd.Context(), app.RunOptions{
		Mode:          mode,
		Update:        !noUpdate,
		Overpass:      !noOverpass,
		RefCounty:     refCounty,
		RefSettlement: refSettlement,
	})
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

// SetOut sets the destination of command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
