package dump

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

func parse(t *testing.T, input string) wikitext.Output {
	t.Helper()

	return wikitext.Parse(wikitext.Default(), input)
}

func TestMarshalJSONRoundTrips(t *testing.T) {
	output := parse(t, "== Title ==\n{{t|a=1}}\n[[Category:X]]")
	data, err := MarshalJSON(output)
	assert.NoError(t, err)

	var document Document
	err = json.Unmarshal(data, &document)
	assert.NoError(t, err)
	assert.True(t, len(document.Nodes) > 0)
}

func TestMarshalJSONTemplate(t *testing.T) {
	output := parse(t, "{{t|a=1|b}}")
	data, err := MarshalJSON(output)
	assert.NoError(t, err)

	var document Document
	assert.NoError(t, json.Unmarshal(data, &document))
	assert.Equal(t, 1, len(document.Nodes))
	template := document.Nodes[0]
	assert.Equal(t, "Template", template.Type)
	assert.Equal(t, 2, len(template.Parameters))
	assert.Equal(t, "a", template.Parameters[0].Name[0].Value)
	assert.Zero(t, template.Parameters[1].Name)
}

func TestMarshalJSONWarnings(t *testing.T) {
	output := parse(t, "{{a")
	data, err := MarshalJSON(output)
	assert.NoError(t, err)

	var document Document
	assert.NoError(t, json.Unmarshal(data, &document))
	assert.Equal(t, 1, len(document.Warnings))
	assert.Equal(t, "MissingEndTagRewinding", document.Warnings[0].Message)
}

func TestMarshalJSONTable(t *testing.T) {
	output := parse(t, "{|\n|a||b\n|}")
	data, err := MarshalJSON(output)
	assert.NoError(t, err)

	var document Document
	assert.NoError(t, json.Unmarshal(data, &document))
	assert.Equal(t, 1, len(document.Nodes))
	table := document.Nodes[0]
	assert.Equal(t, "Table", table.Type)
	assert.Equal(t, 1, len(table.Rows))
	assert.Equal(t, 2, len(table.Rows[0].Cells))
	assert.Equal(t, "Ordinary", table.Rows[0].Cells[0].Type)
}

func TestFormatTreeListsNodes(t *testing.T) {
	output := parse(t, "== Title ==\ntext")
	tree := FormatTree(output)
	assert.True(t, strings.Contains(tree, "Heading"))
	assert.True(t, strings.Contains(tree, "Text"))
}

func TestFormatTreeIndentsChildren(t *testing.T) {
	output := parse(t, "====hi====")
	tree := FormatTree(output)
	assert.True(t, strings.Contains(tree, "\n  Text"))
}

func TestFormatWarnings(t *testing.T) {
	output := parse(t, "{{a")
	formatted := FormatWarnings(output.Warnings)
	assert.True(t, strings.Contains(formatted, "MissingEndTagRewinding"))
	assert.True(t, strings.Contains(formatted, "0..3"))
}

func TestTruncateLongText(t *testing.T) {
	long := strings.Repeat("a", 100)
	short := truncate(long)
	assert.True(t, len(short) < len(long))
}
