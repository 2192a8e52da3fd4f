package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gimmisn/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use: "show <family> <relation>",
		Short: fmt.Sprintf("Print the cached JSON of a relation (%s or %s)",
			domain.FamilyMissingHousenumbers, domain.FamilyAdditionalHousenumbers),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.app.Show(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
