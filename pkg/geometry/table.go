package geometry

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellPadding is the minimum blank space added to every column.
const cellPadding = 2

// display measures cell width in terminal columns. Ambiguous-width runes
// such as π and × always count as one column so layouts do not depend on
// the user's locale.
var display = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Header holds the column titles of a rendered [Table].
var Header = []string{"idx", "Class", "Label", "Perimeter", "Perimeter Formula", "Area", "Area Formula"}

// Row is one table line. Perimeter and Area are rounded to one decimal.
type Row struct {
	Index            int
	Variant          string
	Label            string
	Perimeter        string
	PerimeterFormula string
	Area             string
	AreaFormula      string
}

// Cells returns the row values in [Header] order.
func (r Row) Cells() []string {
	return []string{
		strconv.Itoa(r.Index),
		r.Variant,
		r.Label,
		r.Perimeter,
		r.PerimeterFormula,
		r.Area,
		r.AreaFormula,
	}
}

// FormatMetric rounds v to one decimal place for display.
func FormatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func newRow(i int, s Shape) Row {
	return Row{
		Index:            i,
		Variant:          s.Name(),
		Label:            s.Label(),
		Perimeter:        FormatMetric(s.Perimeter()),
		PerimeterFormula: s.PerimeterFormula(),
		Area:             FormatMetric(s.Area()),
		AreaFormula:      s.AreaFormula(),
	}
}

// Table is a snapshot of a collection laid out as a bordered grid. Shapes
// added to the collection after BuildTable are not part of the table.
type Table struct {
	shapes []Shape
}

// BuildTable snapshots the collection into a table.
func (c *Collection) BuildTable() Table {
	return Table{shapes: c.shapes[:len(c.shapes):len(c.shapes)]}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.shapes)
}

// Rows lazily yields one row per shape in insertion order.
func (t Table) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i, s := range t.shapes {
			if !yield(newRow(i, s)) {
				return
			}
		}
	}
}

// Widths returns the column widths: the widest cell of each column, header
// included, plus padding.
func (t Table) Widths() []int {
	widths := make([]int, len(Header))
	for i, title := range Header {
		widths[i] = display.StringWidth(title)
	}
	for row := range t.Rows() {
		for i, cell := range row.Cells() {
			widths[i] = max(widths[i], display.StringWidth(cell))
		}
	}
	for i := range widths {
		widths[i] += cellPadding
	}
	return widths
}

// Render writes the table to w.
func (t Table) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String renders the table as text. Every line has the same display width:
//
//	/---------\
//	| idx |...|
//	|---------|
//	|  0  |...|
//	\---------/
func (t Table) String() string {
	widths := t.Widths()
	inner := len(widths) - 1
	for _, w := range widths {
		inner += w
	}
	rule := strings.Repeat("-", inner)

	var b strings.Builder
	b.WriteString("/" + rule + "\\\n")
	writeCells(&b, Header, widths)
	for row := range t.Rows() {
		b.WriteString("|" + rule + "|\n")
		writeCells(&b, row.Cells(), widths)
	}
	b.WriteString("\\" + rule + "/\n")
	return b.String()
}

func writeCells(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteByte('|')
		b.WriteString(center(cell, widths[i]))
	}
	b.WriteString("|\n")
}

// center pads s to width columns, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - display.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
