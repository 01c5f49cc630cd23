package cmd

import (
	"fmt"

	"anchovy/internal/catalog"
	"anchovy/internal/tokens"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the reference tables and the token file for inconsistencies",
		Long: `Recomputes every derived value (CMYK strings, rem values, gradient CSS) and
checks it against the reference tables, then parses the token file. Prints
every problem found and exits non-zero if there are any.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := catalog.Validate(); err != nil {
		return err
	}
	s, err := tokens.Summarize()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d color families, %d gradients, %d spacing and %d sizing tokens, %d components; %d design tokens\n",
		len(catalog.Families), len(catalog.Gradients), len(catalog.SpacingScale), len(catalog.SizingScale), len(catalog.Components), s.Total)
	return nil
}
