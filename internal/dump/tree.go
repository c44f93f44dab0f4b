package dump

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

// Color constants for tree output styling.
const (
	colorNodeType = "6" // Cyan
	colorSpan     = "8" // Bright black
	colorWarning  = "3" // Yellow
	colorDetail   = "2" // Green
)

var (
	// nodeTypeStyle styles node type names.
	nodeTypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNodeType)).
			Bold(true)
	// spanStyle dims the byte offset ranges.
	spanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSpan))
	// warningStyle styles warning labels.
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)).
			Bold(true)
	// detailStyle styles node payload details.
	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDetail))
)

// isTTY reports whether stdout is a terminal.
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// FormatTree renders the parse output as an indented tree. Styling is
// applied only when stdout is a terminal.
func FormatTree(output wikitext.Output) string {
	var builder strings.Builder
	styled := isTTY()
	for _, n := range output.Nodes {
		writeNode(&builder, n, 0, styled)
	}
	if len(output.Warnings) > 0 {
		builder.WriteString(FormatWarnings(output.Warnings))
	}

	return builder.String()
}

// FormatWarnings renders the warning list, one warning per line.
func FormatWarnings(warnings []wikitext.Warning) string {
	var builder strings.Builder
	styled := isTTY()
	for _, warning := range warnings {
		label := fmt.Sprintf("[%s]", warning.Message)
		if styled {
			label = warningStyle.Render(label)
		}
		fmt.Fprintf(
			&builder,
			"%s %d..%d\n",
			label,
			warning.Start,
			warning.End,
		)
	}

	return builder.String()
}

// writeNode renders one node and its nested nodes.
func writeNode(builder *strings.Builder, n wikitext.Node, depth int, styled bool) {
	start, end := n.Span()
	typeName := n.NodeType().String()
	spanText := fmt.Sprintf("%d..%d", start, end)
	detail := nodeDetail(n)
	if styled {
		typeName = nodeTypeStyle.Render(typeName)
		spanText = spanStyle.Render(spanText)
		if detail != "" {
			detail = detailStyle.Render(detail)
		}
	}
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(typeName)
	builder.WriteString(" ")
	builder.WriteString(spanText)
	if detail != "" {
		builder.WriteString(" ")
		builder.WriteString(detail)
	}
	builder.WriteString("\n")
	for _, child := range wikitext.Children(n) {
		writeNode(builder, child, depth+1, styled)
	}
}

// nodeDetail returns a one-line payload summary for a node, or "".
func nodeDetail(n wikitext.Node) string {
	switch node := n.(type) {
	case *wikitext.NodeText:
		return fmt.Sprintf("%q", truncate(node.Value()))
	case *wikitext.NodeHeading:
		return fmt.Sprintf("level=%d", node.Level())
	case *wikitext.NodeLink:
		return fmt.Sprintf("target=%q", node.Target())
	case *wikitext.NodeImage:
		return fmt.Sprintf("target=%q", node.Target())
	case *wikitext.NodeCategory:
		return fmt.Sprintf("target=%q", node.Target())
	case *wikitext.NodeRedirect:
		return fmt.Sprintf("target=%q", node.Target())
	case *wikitext.NodeCharacterEntity:
		return fmt.Sprintf("%q", string(node.Character()))
	case *wikitext.NodeStartTag:
		return node.Name()
	case *wikitext.NodeEndTag:
		return node.Name()
	case *wikitext.NodeTag:
		return node.Name()
	case *wikitext.NodeTable:
		return fmt.Sprintf(
			"rows=%d captions=%d",
			len(node.Rows()),
			len(node.Captions()),
		)
	default:
		return ""
	}
}

// maxDetailLength bounds text payload previews in the tree.
const maxDetailLength = 40

// truncate shortens long text payloads for display.
func truncate(value string) string {
	if len(value) <= maxDetailLength {
		return value
	}

	return value[:maxDetailLength] + "…"
}
