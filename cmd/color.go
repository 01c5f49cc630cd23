package cmd

import (
	"fmt"

	"anchovy/internal/colormath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <#RRGGBB>...",
		Short: "Show CMYK, foreground and contrast for one or more colors",
		Long: `Converts each color the way the catalog does: the CMYK string shown on
swatches, the text color chosen for it as a background, and its WCAG contrast
against the light and dark page backgrounds.`,
		Example: `  anchovy color "#3B82F6"
  anchovy color "#10B981" "#F43F5E"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runColor,
	}
}

func runColor(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(args))
	for _, hex := range args {
		row, err := colorRow(hex)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Color", "CMYK", "Text", "On "+colormath.LightBackground, "On "+colormath.DarkBackground).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func colorRow(hex string) ([]string, error) {
	cmyk, err := colormath.HexToCMYK(hex)
	if err != nil {
		return nil, err
	}
	fg, err := colormath.PickForeground(hex)
	if err != nil {
		return nil, err
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg.Text)).
		Render(" " + hex + " ")

	return []string{
		swatch,
		cmyk,
		fg.Text,
		contrastCell(hex, colormath.LightBackground),
		contrastCell(hex, colormath.DarkBackground),
	}, nil
}

func contrastCell(fg, bg string) string {
	ratio, err := colormath.ContrastRatio(fg, bg)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%s %s", colormath.FormatContrast(ratio), colormath.WCAGLevel(ratio))
}
