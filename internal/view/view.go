// Package view provides an interactive terminal browser for a parsed
// wikitext document. The node tree renders into a scrollable viewport;
// warnings are pinned below it.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

const (
	// chromeHeight is the number of lines taken by the title and footer.
	chromeHeight = 3

	// defaultWidth is used before the first WindowSizeMsg arrives.
	defaultWidth = 80
	// defaultHeight is used before the first WindowSizeMsg arrives.
	defaultHeight = 24
)

var (
	// titleStyle styles the header line.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
	// footerStyle dims the key help line.
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	// warningCountStyle highlights a non-zero warning count.
	warningCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3")).
				Bold(true)
)

// Model is the bubbletea model of the browser.
type Model struct {
	title    string
	viewport viewport.Model
	output   wikitext.Output
}

// New creates a browser model for the given document.
func New(title string, output wikitext.Output) Model {
	vp := viewport.New(defaultWidth, defaultHeight-chromeHeight)
	vp.SetContent(renderNodes(output))

	return Model{
		title:    title,
		viewport: vp,
		output:   output,
	}
}

// Init implements tea.Model.
func (Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. q, esc and ctrl+c quit; everything else is
// delegated to the viewport for scrolling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - chromeHeight
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render(m.title))
	builder.WriteString("\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")
	builder.WriteString(m.footer())

	return builder.String()
}

// footer renders the key help and the warning count.
func (m *Model) footer() string {
	help := footerStyle.Render("j/k scroll · q quit")
	if count := len(m.output.Warnings); count > 0 {
		return fmt.Sprintf(
			"%s · %s",
			help,
			warningCountStyle.Render(
				fmt.Sprintf("%d warnings", count),
			),
		)
	}

	return help
}

// renderNodes flattens the node tree into indented lines.
func renderNodes(output wikitext.Output) string {
	var builder strings.Builder
	for _, n := range output.Nodes {
		renderNode(&builder, n, 0)
	}
	for _, warning := range output.Warnings {
		fmt.Fprintf(
			&builder,
			"! %s %d..%d\n",
			warning.Message,
			warning.Start,
			warning.End,
		)
	}

	return builder.String()
}

// renderNode writes one line per node, nested nodes indented below.
func renderNode(builder *strings.Builder, n wikitext.Node, depth int) {
	start, end := n.Span()
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(n.NodeType().String())
	fmt.Fprintf(builder, " %d..%d", start, end)
	if text, ok := n.(*wikitext.NodeText); ok {
		fmt.Fprintf(builder, " %q", text.Value())
	}
	builder.WriteString("\n")
	for _, child := range wikitext.Children(n) {
		renderNode(builder, child, depth+1)
	}
}

// Run starts the interactive browser and blocks until the user quits.
func Run(title string, output wikitext.Output) error {
	program := tea.NewProgram(
		New(title, output),
		tea.WithAltScreen(),
	)
	_, err := program.Run()

	return err
}
