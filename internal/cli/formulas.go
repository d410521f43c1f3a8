package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/learngeometry/pkg/geometry"
)

// formulasCommand creates the formulas command.
func (c *CLI) formulasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formulas [shape]",
		Short: "Show area and perimeter formulas",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, k := range geometry.Kinds() {
				names = append(names, k.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := geometry.Kinds()
			if len(args) == 1 {
				k, err := geometry.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []geometry.Kind{k}
			}
			out, err := formulaTable(kinds)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// formulaTable renders the formula catalog for kinds as a rounded lipgloss table.
func formulaTable(kinds []geometry.Kind) (string, error) {
	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		f, err := geometry.FormulasOf(k)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{k.Title(), f.Area, f.Perimeter})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Shape", "Area", "Perimeter").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	return t.Render(), nil
}
