package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

func model(t *testing.T, input string) Model {
	t.Helper()
	output := wikitext.Parse(wikitext.Default(), input)

	return New("page.wiki", output)
}

func TestViewShowsTitleAndNodes(t *testing.T) {
	m := model(t, "====hi====")
	view := m.View()
	require.Contains(t, view, "page.wiki")
	require.Contains(t, view, "Heading")
}

func TestViewShowsWarningCount(t *testing.T) {
	m := model(t, "{{a")
	view := m.View()
	require.Contains(t, view, "1 warnings")
}

func TestUpdateQuitsOnQ(t *testing.T) {
	m := model(t, "text")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestUpdateResizes(t *testing.T) {
	m := model(t, "text")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	resized, ok := updated.(Model)
	require.True(t, ok)
	require.Equal(t, 100, resized.viewport.Width)
	require.Equal(t, 40-chromeHeight, resized.viewport.Height)
}

func TestRenderNodesIndentation(t *testing.T) {
	output := wikitext.Parse(wikitext.Default(), "====hi====")
	rendered := renderNodes(output)
	require.True(t, strings.Contains(rendered, "Heading"))
	require.True(t, strings.Contains(rendered, "\n  Text"))
}
