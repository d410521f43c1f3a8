package cli

import (
	"github.com/spf13/cobra"
)

// tableCommand creates the table command.
func (c *CLI) tableCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "table [shape...]",
		Short: "Print a table of shapes with their perimeter and area",
		Long: `Print a table of shapes with their perimeter and area.

Shapes are given as kind:p1,p2,... and/or read from a TOML file:

  [[shape]]
  kind = "triangle"
  params = [3, 4, 5]`,
		Example: `  learngeometry table circle:10 square:1 triangle:3,4,5
  learngeometry table --file shapes.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := buildCollection(cmd.Context(), file, args)
			if err != nil {
				return err
			}
			if shapes.Count() == 0 {
				printWarning("First add some shapes!")
				printNextStep("Try", "learngeometry table circle:3 triangle:3,4,5")
				return nil
			}
			return shapes.BuildTable().Render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[shape]] entries")

	return cmd
}
