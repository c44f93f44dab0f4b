package wikitext

import (
	"testing"
)

// parseDefault parses input with the default configuration.
func parseDefault(t *testing.T, input string) Output {
	t.Helper()

	return Parse(Default(), input)
}

// textValue asserts that n is a Text node and returns its value.
func textValue(t *testing.T, n Node) string {
	t.Helper()
	text, ok := n.(*NodeText)
	if !ok {
		t.Fatalf("expected Text node, got %s", n.NodeType())
	}

	return text.Value()
}

// requireNodeCount fails unless the output has exactly want top-level
// nodes.
func requireNodeCount(t *testing.T, output Output, want int) {
	t.Helper()
	if len(output.Nodes) != want {
		t.Fatalf(
			"expected %d nodes, got %d: %v",
			want,
			len(output.Nodes),
			nodeTypes(output.Nodes),
		)
	}
}

// nodeTypes lists the types of nodes for failure messages.
func nodeTypes(nodes []Node) []NodeType {
	types := make([]NodeType, len(nodes))
	for i, n := range nodes {
		types[i] = n.NodeType()
	}

	return types
}

// requireWarnings fails unless the output has exactly the given warning
// kinds in order.
func requireWarnings(t *testing.T, output Output, want ...WarningMessage) {
	t.Helper()
	if len(output.Warnings) != len(want) {
		t.Fatalf(
			"expected %d warnings, got %v",
			len(want),
			output.Warnings,
		)
	}
	for i, message := range want {
		if output.Warnings[i].Message != message {
			t.Fatalf(
				"warning %d: expected %s, got %s",
				i,
				message,
				output.Warnings[i].Message,
			)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	output := parseDefault(t, "")
	requireNodeCount(t, output, 0)
	requireWarnings(t, output)
}

func TestParseLoneNewline(t *testing.T) {
	output := parseDefault(t, "\n")
	requireNodeCount(t, output, 0)
	requireWarnings(t, output)
}

func TestParseThreeNewlines(t *testing.T) {
	output := parseDefault(t, "\n\n\n")
	requireNodeCount(t, output, 0)
	requireWarnings(t, output, WarningRepeatedEmptyLine)
}

func TestParsePlainText(t *testing.T) {
	output := parseDefault(t, "hello world")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "hello world" {
		t.Fatalf("expected text %q, got %q", "hello world", got)
	}
	requireWarnings(t, output)
}

func TestParseHeading(t *testing.T) {
	output := parseDefault(t, "====hi====")
	requireNodeCount(t, output, 1)
	heading, ok := output.Nodes[0].(*NodeHeading)
	if !ok {
		t.Fatalf("expected Heading, got %s", output.Nodes[0].NodeType())
	}
	if heading.Level() != 4 {
		t.Fatalf("expected level 4, got %d", heading.Level())
	}
	if len(heading.Nodes()) != 1 || textValue(t, heading.Nodes()[0]) != "hi" {
		t.Fatalf("expected content [Text hi], got %v", heading.Nodes())
	}
	requireWarnings(t, output)
}

func TestParseHeadingWithoutClosingRun(t *testing.T) {
	output := parseDefault(t, "== hi")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "== hi" {
		t.Fatalf("expected literal text, got %q", got)
	}
}

func TestParseUnorderedList(t *testing.T) {
	output := parseDefault(t, "* a\n* b\n")
	requireNodeCount(t, output, 1)
	list, ok := output.Nodes[0].(*NodeUnorderedList)
	if !ok {
		t.Fatalf("expected UnorderedList, got %s", output.Nodes[0].NodeType())
	}
	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if textValue(t, items[0].Nodes()[0]) != "a" {
		t.Fatalf("unexpected first item content")
	}
	if textValue(t, items[1].Nodes()[0]) != "b" {
		t.Fatalf("unexpected second item content")
	}
	requireWarnings(t, output)
}

func TestParseNestedLists(t *testing.T) {
	output := parseDefault(t, "* a\n** b\n* c\n")
	requireNodeCount(t, output, 1)
	list := output.Nodes[0].(*NodeUnorderedList)
	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 outer items, got %d", len(items))
	}
	first := items[0].Nodes()
	if len(first) != 2 {
		t.Fatalf("expected text plus nested list, got %v", nodeTypes(first))
	}
	nested, ok := first[1].(*NodeUnorderedList)
	if !ok {
		t.Fatalf("expected nested UnorderedList, got %s", first[1].NodeType())
	}
	if len(nested.Items()) != 1 || textValue(t, nested.Items()[0].Nodes()[0]) != "b" {
		t.Fatalf("unexpected nested item")
	}
}

func TestParseDefinitionList(t *testing.T) {
	output := parseDefault(t, ";t\n:d\n")
	requireNodeCount(t, output, 1)
	list := output.Nodes[0].(*NodeDefinitionList)
	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Type() != DefinitionListItemTypeTerm {
		t.Fatalf("expected first item Term, got %s", items[0].Type())
	}
	if items[1].Type() != DefinitionListItemTypeDetails {
		t.Fatalf("expected second item Details, got %s", items[1].Type())
	}
}

func TestParseCategoryLink(t *testing.T) {
	output := parseDefault(t, "[[Category:Foo|bar]]")
	requireNodeCount(t, output, 1)
	category, ok := output.Nodes[0].(*NodeCategory)
	if !ok {
		t.Fatalf("expected Category, got %s", output.Nodes[0].NodeType())
	}
	if category.Target() != "Foo" {
		t.Fatalf("expected target Foo, got %q", category.Target())
	}
	if len(category.Ordinal()) != 1 || textValue(t, category.Ordinal()[0]) != "bar" {
		t.Fatalf("expected ordinal [Text bar], got %v", category.Ordinal())
	}
	requireWarnings(t, output)
}

func TestParseImageLink(t *testing.T) {
	output := parseDefault(t, "[[File:Pic.png|thumb]]")
	requireNodeCount(t, output, 1)
	image, ok := output.Nodes[0].(*NodeImage)
	if !ok {
		t.Fatalf("expected Image, got %s", output.Nodes[0].NodeType())
	}
	if image.Target() != "Pic.png" {
		t.Fatalf("expected target Pic.png, got %q", image.Target())
	}
}

func TestParseLinkTrail(t *testing.T) {
	output := parseDefault(t, "[[Example]]s")
	requireNodeCount(t, output, 1)
	link, ok := output.Nodes[0].(*NodeLink)
	if !ok {
		t.Fatalf("expected Link, got %s", output.Nodes[0].NodeType())
	}
	if link.Target() != "Example" {
		t.Fatalf("expected target Example, got %q", link.Target())
	}
	text := link.Text()
	if len(text) != 2 {
		t.Fatalf("expected 2 text nodes, got %d", len(text))
	}
	if textValue(t, text[0]) != "Example" || textValue(t, text[1]) != "s" {
		t.Fatalf("unexpected text nodes")
	}
	if _, end := link.Span(); end != 12 {
		t.Fatalf("expected end 12, got %d", end)
	}
}

func TestParseUnterminatedLink(t *testing.T) {
	output := parseDefault(t, "[[a b")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "[[a b" {
		t.Fatalf("expected literal text, got %q", got)
	}
	requireWarnings(t, output, WarningInvalidLinkSyntax)
}

func TestParseTemplate(t *testing.T) {
	output := parseDefault(t, "{{t|a=1|b}}")
	requireNodeCount(t, output, 1)
	template, ok := output.Nodes[0].(*NodeTemplate)
	if !ok {
		t.Fatalf("expected Template, got %s", output.Nodes[0].NodeType())
	}
	if len(template.Name()) != 1 || textValue(t, template.Name()[0]) != "t" {
		t.Fatalf("unexpected template name")
	}
	parameters := template.Parameters()
	if len(parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(parameters))
	}
	if parameters[0].Name() == nil || textValue(t, parameters[0].Name()[0]) != "a" {
		t.Fatalf("expected first parameter named a")
	}
	if textValue(t, parameters[0].Value()[0]) != "1" {
		t.Fatalf("expected first parameter value 1")
	}
	if parameters[1].Name() != nil {
		t.Fatalf("expected second parameter positional")
	}
	if textValue(t, parameters[1].Value()[0]) != "b" {
		t.Fatalf("expected second parameter value b")
	}
	requireWarnings(t, output)
}

func TestParseParameterWithDefault(t *testing.T) {
	output := parseDefault(t, "{{{1|def}}}")
	requireNodeCount(t, output, 1)
	parameter, ok := output.Nodes[0].(*NodeParameter)
	if !ok {
		t.Fatalf("expected Parameter, got %s", output.Nodes[0].NodeType())
	}
	if textValue(t, parameter.Name()[0]) != "1" {
		t.Fatalf("unexpected parameter name")
	}
	def, hasDefault := parameter.Default()
	if !hasDefault || len(def) != 1 || textValue(t, def[0]) != "def" {
		t.Fatalf("expected default [Text def], got %v", def)
	}
	if _, end := parameter.Span(); end != 11 {
		t.Fatalf("expected end 11, got %d", end)
	}
}

func TestParseTable(t *testing.T) {
	output := parseDefault(t, "{|\n|a||b\n|}")
	requireNodeCount(t, output, 1)
	table, ok := output.Nodes[0].(*NodeTable)
	if !ok {
		t.Fatalf("expected Table, got %s", output.Nodes[0].NodeType())
	}
	rows := table.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	cells := rows[0].Cells()
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if textValue(t, cells[0].Content()[0]) != "a" {
		t.Fatalf("unexpected first cell content")
	}
	if textValue(t, cells[1].Content()[0]) != "b" {
		t.Fatalf("unexpected second cell content")
	}
	requireWarnings(t, output)
}

func TestParseExternalLink(t *testing.T) {
	output := parseDefault(t, "[http://example.com hi]")
	requireNodeCount(t, output, 1)
	link, ok := output.Nodes[0].(*NodeExternalLink)
	if !ok {
		t.Fatalf("expected ExternalLink, got %s", output.Nodes[0].NodeType())
	}
	nodes := link.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 content node, got %d", len(nodes))
	}
	if got := textValue(t, nodes[0]); got != "http://example.com hi" {
		t.Fatalf("unexpected content %q", got)
	}
	requireWarnings(t, output)
}

func TestParseExternalLinkUnknownProtocol(t *testing.T) {
	output := parseDefault(t, "[nope://example.com]")
	for _, n := range output.Nodes {
		if n.NodeType() == NodeTypeExternalLink {
			t.Fatalf("unexpected external link for unknown protocol")
		}
	}
}

func TestParseExternalLinkLineBreak(t *testing.T) {
	output := parseDefault(t, "[http://e\nx]")
	requireWarnings(t, output, WarningInvalidLinkSyntax)
	for _, n := range output.Nodes {
		if n.NodeType() == NodeTypeExternalLink {
			t.Fatalf("unexpected external link across line break")
		}
	}
}

func TestParseRedirect(t *testing.T) {
	output := parseDefault(t, "#REDIRECT [[X]]\nmore")
	if len(output.Nodes) < 1 {
		t.Fatalf("expected nodes")
	}
	redirect, ok := output.Nodes[0].(*NodeRedirect)
	if !ok {
		t.Fatalf("expected Redirect, got %s", output.Nodes[0].NodeType())
	}
	if redirect.Target() != "X" {
		t.Fatalf("expected target X, got %q", redirect.Target())
	}
	requireWarnings(t, output, WarningTextAfterRedirect)
}

func TestParseRedirectOnly(t *testing.T) {
	output := parseDefault(t, "#REDIRECT [[X]]")
	requireNodeCount(t, output, 1)
	requireWarnings(t, output)
}

func TestParseInvalidCharacter(t *testing.T) {
	output := parseDefault(t, "\x01")
	requireNodeCount(t, output, 0)
	requireWarnings(t, output, WarningInvalidCharacter)
	if output.Warnings[0].Start != 0 || output.Warnings[0].End != 1 {
		t.Fatalf("expected warning span [0,1), got %v", output.Warnings[0])
	}
}

func TestParseInvalidCharacterBetweenText(t *testing.T) {
	output := parseDefault(t, "a\x01b")
	requireNodeCount(t, output, 2)
	if textValue(t, output.Nodes[0]) != "a" || textValue(t, output.Nodes[1]) != "b" {
		t.Fatalf("expected control byte excluded from text runs")
	}
	requireWarnings(t, output, WarningInvalidCharacter)
}

func TestParseUnterminatedTemplate(t *testing.T) {
	output := parseDefault(t, "{{a")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "{{a" {
		t.Fatalf("expected literal text, got %q", got)
	}
	requireWarnings(t, output, WarningMissingEndTagRewinding)
}

func TestParseStrayClosingBraces(t *testing.T) {
	output := parseDefault(t, "}}")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "}}" {
		t.Fatalf("expected literal text, got %q", got)
	}
	requireWarnings(t, output, WarningUnexpectedEndTag)
}

func TestParseParagraphBreak(t *testing.T) {
	output := parseDefault(t, "a\n\nb")
	requireNodeCount(t, output, 3)
	if output.Nodes[1].NodeType() != NodeTypeParagraphBreak {
		t.Fatalf("expected ParagraphBreak, got %s", output.Nodes[1].NodeType())
	}
	if textValue(t, output.Nodes[0]) != "a" || textValue(t, output.Nodes[2]) != "b" {
		t.Fatalf("unexpected text around paragraph break")
	}
}

func TestParseHorizontalDivider(t *testing.T) {
	output := parseDefault(t, "----\n")
	requireNodeCount(t, output, 1)
	if output.Nodes[0].NodeType() != NodeTypeHorizontalDivider {
		t.Fatalf("expected HorizontalDivider, got %s", output.Nodes[0].NodeType())
	}
}

func TestParseBoldItalic(t *testing.T) {
	output := parseDefault(t, "''i'' '''b''' '''''bi'''''")
	var types []NodeType
	for _, n := range output.Nodes {
		types = append(types, n.NodeType())
	}
	want := []NodeType{
		NodeTypeItalic,
		NodeTypeText,
		NodeTypeItalic,
		NodeTypeText,
		NodeTypeBold,
		NodeTypeText,
		NodeTypeBold,
		NodeTypeText,
		NodeTypeBoldItalic,
		NodeTypeText,
		NodeTypeBoldItalic,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("node %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestParsePreformatted(t *testing.T) {
	output := parseDefault(t, " code\n")
	requireNodeCount(t, output, 1)
	preformatted, ok := output.Nodes[0].(*NodePreformatted)
	if !ok {
		t.Fatalf("expected Preformatted, got %s", output.Nodes[0].NodeType())
	}
	if textValue(t, preformatted.Nodes()[0]) != "code" {
		t.Fatalf("unexpected preformatted content")
	}
}

func TestParseComment(t *testing.T) {
	output := parseDefault(t, "a<!-- note -->b")
	requireNodeCount(t, output, 3)
	if output.Nodes[1].NodeType() != NodeTypeComment {
		t.Fatalf("expected Comment, got %s", output.Nodes[1].NodeType())
	}
}

func TestParseUnterminatedComment(t *testing.T) {
	output := parseDefault(t, "a<!--b")
	requireNodeCount(t, output, 2)
	comment := output.Nodes[1]
	if comment.NodeType() != NodeTypeComment {
		t.Fatalf("expected Comment, got %s", comment.NodeType())
	}
	if _, end := comment.Span(); end != 6 {
		t.Fatalf("expected comment to run to end of input, got %d", end)
	}
}

func TestParseCharacterEntities(t *testing.T) {
	output := parseDefault(t, "&amp;&#65;&#x41;")
	requireNodeCount(t, output, 3)
	want := []rune{'&', 'A', 'A'}
	for i, r := range want {
		entity, ok := output.Nodes[i].(*NodeCharacterEntity)
		if !ok {
			t.Fatalf("node %d: expected CharacterEntity, got %s", i, output.Nodes[i].NodeType())
		}
		if entity.Character() != r {
			t.Fatalf("node %d: expected %q, got %q", i, r, entity.Character())
		}
	}
}

func TestParseUnknownEntity(t *testing.T) {
	output := parseDefault(t, "&nosuch;")
	requireNodeCount(t, output, 1)
	if got := textValue(t, output.Nodes[0]); got != "&nosuch;" {
		t.Fatalf("expected literal text, got %q", got)
	}
}

func TestParseMagicWord(t *testing.T) {
	output := parseDefault(t, "__TOC__")
	requireNodeCount(t, output, 1)
	if output.Nodes[0].NodeType() != NodeTypeMagicWord {
		t.Fatalf("expected MagicWord, got %s", output.Nodes[0].NodeType())
	}
}

func TestParseExtensionTag(t *testing.T) {
	output := parseDefault(t, "<ref>x</ref>")
	requireNodeCount(t, output, 1)
	tag, ok := output.Nodes[0].(*NodeTag)
	if !ok {
		t.Fatalf("expected Tag, got %s", output.Nodes[0].NodeType())
	}
	if tag.Name() != "ref" {
		t.Fatalf("expected name ref, got %q", tag.Name())
	}
	if len(tag.Nodes()) != 1 || textValue(t, tag.Nodes()[0]) != "x" {
		t.Fatalf("unexpected tag content")
	}
}

func TestParseHTMLTagNodes(t *testing.T) {
	output := parseDefault(t, "<span>x</span>")
	requireNodeCount(t, output, 3)
	if output.Nodes[0].NodeType() != NodeTypeStartTag {
		t.Fatalf("expected StartTag, got %s", output.Nodes[0].NodeType())
	}
	if output.Nodes[2].NodeType() != NodeTypeEndTag {
		t.Fatalf("expected EndTag, got %s", output.Nodes[2].NodeType())
	}
}

func TestParseUnterminatedExtensionTag(t *testing.T) {
	output := parseDefault(t, "<ref>x")
	requireWarnings(t, output, WarningMissingEndTagRewinding)
	for _, n := range output.Nodes {
		if n.NodeType() == NodeTypeTag {
			t.Fatalf("unexpected Tag node for unterminated tag")
		}
	}
}
