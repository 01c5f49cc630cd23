package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"anchovy/internal/tokens"
	"anchovy/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	tokensExportDir    string
	tokensExportFormat string
)

func newTokensCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tokens",
		Short: "Work with the design token file",
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Write anchovy-design-tokens.json (or .yaml) to a directory",
		Long: `Writes the design token file. The JSON export is the embedded file byte for
byte; --format yaml converts it. Defaults come from tokens.exportDir and
tokens.format in the config.`,
		Args: cobra.NoArgs,
		RunE: runTokensExport,
	}
	export.Flags().StringVarP(&tokensExportDir, "dir", "o", "", "Directory to write to")
	export.Flags().StringVarP(&tokensExportFormat, "format", "f", "", "json or yaml")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Count the tokens per category",
		Args:  cobra.NoArgs,
		RunE:  runTokensSummary,
	}

	get := &cobra.Command{
		Use:     "get <path>",
		Short:   "Print one token by its dotted path",
		Example: "  anchovy tokens get color.neural.500",
		Args:    cobra.ExactArgs(1),
		RunE:    runTokensGet,
	}

	c.AddCommand(export, summary, get)
	return c
}

func runTokensExport(cmd *cobra.Command, args []string) error {
	dir := appConfig.Tokens.ExportDir
	if tokensExportDir != "" {
		dir = tokensExportDir
	}
	formatName := appConfig.Tokens.Format
	if tokensExportFormat != "" {
		formatName = tokensExportFormat
	}
	format, err := tokens.ParseFormat(formatName)
	if err != nil {
		return err
	}

	path, err := tokens.Export(dir, format)
	if err != nil {
		return err
	}
	logging.Debug("Tokens", "exported %s tokens to %s", format, path)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}

func runTokensSummary(cmd *cobra.Command, args []string) error {
	s, err := tokens.Summarize()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(s.Categories)+1)
	for _, c := range s.Categories {
		rows = append(rows, []string{c.Title, strconv.Itoa(c.Count)})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(s.Total)})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Tokens").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 1 {
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow || row == len(rows)-1 {
				style = style.Bold(true)
			}
			return style
		})

	fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n%s\n", s.Name, s.Version, t.Render())
	return nil
}

func runTokensGet(cmd *cobra.Command, args []string) error {
	tok, err := tokens.Lookup(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
