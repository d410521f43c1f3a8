package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/learngeometry/pkg/errors"
	"github.com/matzehuels/learngeometry/pkg/geometry"
)

const invalidParamMsg = "It is not a valid parameter! Try again"

// screen is the page the menu is currently showing.
type screen int

const (
	screenMain screen = iota
	screenPickShape
	screenPickFormula
	screenParams
	screenResult
)

// resultKind selects how a result page is decorated.
type resultKind int

const (
	resultInfo resultKind = iota
	resultSuccess
	resultWarning
	resultError
)

// menuCommand creates the menu command, an explicit alias for running the
// root command without arguments.
func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd.Context())
		},
	}
}

// runMenu runs the interactive session until the user exits.
func (c *CLI) runMenu(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.Config.Display.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newMenuModel(logger, c.Config.Display.Precision), opts...).Run()
	if err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	n, err := sessionShapeCount(final)
	if err != nil {
		return err
	}
	printSuccess("Session ended with %d shape(s)", n)
	return nil
}

// sessionShapeCount returns how many shapes the finished session collected.
func sessionShapeCount(final tea.Model) (int, error) {
	m, ok := final.(menuModel)
	if !ok {
		return 0, errors.New(errors.ErrCodeInternal, "menu ended with unexpected model %T", final)
	}
	return m.shapes.Count(), nil
}

// =============================================================================
// menuModel - Interactive session
// =============================================================================

// menuModel is the bubbletea model of one interactive session. It owns the
// session's shape collection.
type menuModel struct {
	shapes    *geometry.Collection
	logger    *log.Logger
	precision int

	screen screen

	// Parameter entry for the shape being built.
	kind     geometry.Kind
	params   []float64
	input    string
	inputErr string

	// Result page.
	result     string
	resultKind resultKind

	quitting bool
}

func newMenuModel(logger *log.Logger, precision int) menuModel {
	return menuModel{
		shapes:    geometry.NewCollection(),
		logger:    logger,
		precision: precision,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMain:
		return m.updateMain(key)
	case screenPickShape, screenPickFormula:
		return m.updatePick(key)
	case screenParams:
		return m.updateParams(key), nil
	case screenResult:
		m.screen = screenMain
	}
	return m, nil
}

func (m menuModel) updateMain(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "1":
		m.screen = screenPickShape
	case "2":
		if m.shapes.Count() == 0 {
			return m.showResult(resultWarning, "First add some shapes!"), nil
		}
		return m.showResult(resultInfo, m.shapes.BuildTable().String()), nil
	case "3":
		return m.showLargest(geometry.MetricPerimeter), nil
	case "4":
		return m.showLargest(geometry.MetricArea), nil
	case "5":
		m.screen = screenPickFormula
	case "0", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) updatePick(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := key.String()
	if s == "0" || s == "esc" {
		m.screen = screenMain
		return m, nil
	}

	kind, ok := kindForKey(s)
	if !ok {
		return m, nil
	}
	if m.screen == screenPickFormula {
		f, err := geometry.FormulasOf(kind)
		if err != nil {
			return m.showResult(resultError, errors.UserMessage(err)), nil
		}
		text := fmt.Sprintf("%s\nFormulas:\nArea: %s\nPerimeter: %s", kind.Title(), f.Area, f.Perimeter)
		return m.showResult(resultInfo, text), nil
	}

	m.screen = screenParams
	m.kind = kind
	m.params = nil
	m.input = ""
	m.inputErr = ""
	return m, nil
}

func (m menuModel) updateParams(key tea.KeyMsg) menuModel {
	switch key.Type {
	case tea.KeyEsc:
		m.screen = screenMain
		return m
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m
	case tea.KeyRunes:
		m.input += string(key.Runes)
		return m
	case tea.KeyEnter:
	default:
		return m
	}

	v, err := errors.ParseLength(m.input)
	m.input = ""
	if err != nil {
		m.logger.Debug("Rejected parameter", "err", err)
		m.inputErr = invalidParamMsg
		return m
	}
	m.inputErr = ""
	m.params = append(m.params, v)
	if len(m.params) < len(m.kind.ParamNames()) {
		return m
	}

	s, err := geometry.New(m.kind, m.params...)
	if err != nil {
		return m.showResult(resultError, errors.UserMessage(err))
	}
	if err := m.shapes.Add(s); err != nil {
		return m.showResult(resultError, errors.UserMessage(err))
	}
	m.logger.Debug("Added shape", "label", s.Label(), "count", m.shapes.Count())
	return m.showResult(resultSuccess, "Added "+s.Label())
}

func (m menuModel) showLargest(metric geometry.Metric) menuModel {
	s, err := m.shapes.Largest(metric)
	if errors.Is(err, errors.ErrCodeEmptyCollection) {
		return m.showResult(resultWarning, "First add some shapes!")
	}
	if err != nil {
		return m.showResult(resultError, errors.UserMessage(err))
	}
	text := fmt.Sprintf("Shape with the largest %s:\n%s", metric, largestSummary(s, metric, m.precision))
	return m.showResult(resultInfo, text)
}

func (m menuModel) showResult(kind resultKind, text string) menuModel {
	m.screen = screenResult
	m.result = text
	m.resultKind = kind
	return m
}

// kindForKey maps the picker keys "1".."6" to shape kinds.
func kindForKey(key string) (geometry.Kind, bool) {
	kinds := geometry.Kinds()
	if len(key) != 1 || key[0] < '1' || int(key[0]-'0') > len(kinds) {
		return 0, false
	}
	return kinds[key[0]-'1'], true
}

// paramPrompt returns the question asked for parameter i of kind.
func paramPrompt(kind geometry.Kind, i int) string {
	ordinals := []string{"first", "second", "third"}
	switch kind {
	case geometry.Circle:
		return "Enter the length of circle radius:"
	case geometry.Triangle, geometry.Rectangle:
		return fmt.Sprintf("Enter length of %s side of %s:", ordinals[i], strings.ToLower(kind.Title()))
	default:
		return fmt.Sprintf("Enter length of side of %s:", strings.ToLower(kind.Title()))
	}
}

// =============================================================================
// Views
// =============================================================================

func (m menuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	switch m.screen {
	case screenMain:
		b.WriteString(StyleTitle.Render("LEARN GEOMETRY"))
		b.WriteString("\n\nWhat do you want to do?\n")
		writeOptions(&b, []string{
			"Add new shape",
			"Show all shapes",
			"Show shape with the largest perimeter",
			"Show shape with the largest area",
			"Show formulas",
		}, "Exit program")
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d shape(s) in this session", m.shapes.Count())))
	case screenPickShape, screenPickFormula:
		b.WriteString(StyleTitle.Render("Please choose shape type:"))
		b.WriteString("\n\n")
		var titles []string
		for _, k := range geometry.Kinds() {
			titles = append(titles, k.Title())
		}
		writeOptions(&b, titles, "Back to menu")
	case screenParams:
		b.WriteString(StyleTitle.Render(m.kind.Title()))
		b.WriteString("\n\n")
		for i, v := range m.params {
			b.WriteString(StyleDim.Render(fmt.Sprintf("%s = %s", m.kind.ParamNames()[i], strconv.FormatFloat(v, 'f', -1, 64))))
			b.WriteString("\n")
		}
		b.WriteString(paramPrompt(m.kind, len(m.params)))
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(iconArrow+" ") + m.input)
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(StyleError.Render(m.inputErr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("⏎ confirm  esc back to menu"))
	case screenResult:
		b.WriteString(m.renderResult())
		b.WriteString("\n\n")
		b.WriteString(StyleDim.Render("Press any key to return to the menu"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m menuModel) renderResult() string {
	switch m.resultKind {
	case resultSuccess:
		return styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render(m.result)
	case resultWarning:
		return styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(m.result)
	case resultError:
		return styleIconError.Render(iconError) + " " + StyleError.Render(m.result)
	}
	return m.result
}

func writeOptions(b *strings.Builder, options []string, zero string) {
	for i, opt := range options {
		fmt.Fprintf(b, "\t%s %s\n", StyleNumber.Render(fmt.Sprintf("(%d)", i+1)), opt)
	}
	fmt.Fprintf(b, "\t%s %s\n\n", StyleNumber.Render("(0)"), zero)
}
