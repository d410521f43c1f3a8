package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/learngeometry/pkg/geometry"
)

// largestCommand creates the largest command.
func (c *CLI) largestCommand() *cobra.Command {
	var (
		file string
		by   string
	)

	cmd := &cobra.Command{
		Use:   "largest [shape...]",
		Short: "Show the shape with the largest perimeter or area",
		Example: `  learngeometry largest circle:10 square:1 triangle:3,4,5
  learngeometry largest --by area --file shapes.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := geometry.ParseMetric(by)
			if err != nil {
				return err
			}
			shapes, err := buildCollection(cmd.Context(), file, args)
			if err != nil {
				return err
			}
			s, err := shapes.Largest(metric)
			if err != nil {
				return err
			}
			return writeLargest(cmd.OutOrStdout(), s, metric, c.Config.Display.Precision)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[shape]] entries")
	cmd.Flags().StringVar(&by, "by", "perimeter", "metric to compare: perimeter or area")
	_ = cmd.RegisterFlagCompletionFunc("by", cobra.FixedCompletions([]string{"perimeter", "area"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// largestSummary formats the result of an extremum query, e.g.
// "Circle, r = 10\tperimeter: 62.8".
func largestSummary(s geometry.Shape, m geometry.Metric, precision int) string {
	return fmt.Sprintf("%s\t%s: %s", s.Label(), m, strconv.FormatFloat(m.Of(s), 'f', precision, 64))
}

func writeLargest(w io.Writer, s geometry.Shape, m geometry.Metric, precision int) error {
	_, err := fmt.Fprintf(w, "Shape with the largest %s:\n%s\n", m, largestSummary(s, m, precision))
	return err
}
